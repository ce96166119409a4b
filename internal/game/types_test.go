package game

import (
	"strings"
	"testing"
)

func TestAttack_Validate(t *testing.T) {
	tests := []struct {
		name    string
		attack  Attack
		wantErr bool
	}{
		{
			name:    "default attack is valid",
			attack:  DefaultAttack(),
			wantErr: false,
		},
		{
			name:    "corner shot",
			attack:  Attack{Hit: true, Origin: [2]int{4, 4}, Type: ShipCarrier},
			wantErr: false,
		},
		{
			name:    "origin past board edge",
			attack:  Attack{Origin: [2]int{5, 0}, Type: ShipDestroyer},
			wantErr: true,
		},
		{
			name:    "negative origin",
			attack:  Attack{Origin: [2]int{0, -1}, Type: ShipDestroyer},
			wantErr: true,
		},
		{
			name:    "unknown ship type",
			attack:  Attack{Origin: [2]int{1, 1}, Type: ShipKind("Canoe")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attack.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultAttack(t *testing.T) {
	a := DefaultAttack()
	if !a.Hit || a.Destroyed {
		t.Errorf("DefaultAttack() = %+v, want hit and not destroyed", a)
	}
	if a.Origin != [2]int{0, 0} {
		t.Errorf("DefaultAttack() origin = %v, want [0 0]", a.Origin)
	}
	if a.Type != ShipDestroyer {
		t.Errorf("DefaultAttack() type = %q, want %q", a.Type, ShipDestroyer)
	}
}

func TestValidShipKind(t *testing.T) {
	for _, kind := range []ShipKind{ShipCarrier, ShipBattleship, ShipDestroyer, ShipSubmarine} {
		if !ValidShipKind(string(kind)) {
			t.Errorf("ValidShipKind(%q) = false, want true", kind)
		}
	}
	if ValidShipKind("Dinghy") {
		t.Error(`ValidShipKind("Dinghy") = true, want false`)
	}
}

func TestRandomUsername(t *testing.T) {
	for i := 0; i < 20; i++ {
		name := RandomUsername()
		if name == "" {
			t.Fatal("RandomUsername() returned empty string")
		}
		if strings.Count(name, "-") != 2 {
			t.Errorf("RandomUsername() = %q, want adjective-noun-number shape", name)
		}
	}
}
