package domain

import "testing"

func TestIdentity_IsOwnerOrSelf(t *testing.T) {
	cases := []struct {
		name    string
		ident   Identity
		ownerID string
		want    bool
	}{
		{"cliente owns own record", ClienteIdentity("cli_1", "Bruno"), "cli_1", true},
		{"cliente other record", ClienteIdentity("cli_1", "Bruno"), "cli_2", false},
		{"admin matching id", AdminIdentity("adm_1", "Ana", 5), "adm_1", true},
		{"admin other record", AdminIdentity("adm_1", "Ana", 5), "cli_1", false},
		{"anonymous", Identity{}, "cli_1", false},
		{"empty owner", ClienteIdentity("cli_1", "Bruno"), "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ident.IsOwnerOrSelf(tc.ownerID); got != tc.want {
				t.Fatalf("IsOwnerOrSelf(%q) = %v, want %v", tc.ownerID, got, tc.want)
			}
		})
	}
}

func TestIdentity_CanAccess(t *testing.T) {
	cases := []struct {
		name    string
		ident   Identity
		ownerID string
		want    bool
	}{
		{"admin bypasses ownership", AdminIdentity("adm_1", "Ana", 1), "cli_99", true},
		{"admin empty owner", AdminIdentity("adm_1", "Ana", 1), "", true},
		{"cliente own record", ClienteIdentity("cli_1", "Bruno"), "cli_1", true},
		{"cliente other record", ClienteIdentity("cli_1", "Bruno"), "cli_2", false},
		{"anonymous", Identity{}, "cli_1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ident.CanAccess(tc.ownerID); got != tc.want {
				t.Fatalf("CanAccess(%q) = %v, want %v", tc.ownerID, got, tc.want)
			}
		})
	}
}

func TestPropostaStatus_CanTransitionTo(t *testing.T) {
	if !PropostaPendente.CanTransitionTo(PropostaAceita) {
		t.Fatalf("pendente -> aceita should be allowed")
	}
	if !PropostaPendente.CanTransitionTo(PropostaRecusada) {
		t.Fatalf("pendente -> recusada should be allowed")
	}
	if PropostaAceita.CanTransitionTo(PropostaRecusada) {
		t.Fatalf("aceita -> recusada should be rejected")
	}
	if PropostaRecusada.CanTransitionTo(PropostaPendente) {
		t.Fatalf("recusada -> pendente should be rejected")
	}
}
