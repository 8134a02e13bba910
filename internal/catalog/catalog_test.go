package catalog

import (
	"testing"

	"github.com/fametro/portal-ingresso/internal/taxonomy"
)

func TestCanonicalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Bare tecnologo subject", "Logística", "Tecnologia em Logística"},
		{"Full tecnologo form", "Tecnologia em Logística", "Tecnologia em Logística"},
		{"Unaccented variant", "Analise e Desenvolvimento de Sistemas", "Tecnologia em Análise e Desenvolvimento de Sistemas"},
		{"Alternate spelling", "Recursos Humanos", "Tecnologia em Gestão de Recursos Humanos"},
		{"Singular network variant", "Rede de Computadores", "Redes de Computadores"},
		{"Renamed engineering track", "Engenharia Ambiental", "Engenharia Ambiental e Energias Renováveis"},
		{"Unmapped passes through trimmed", "  Direito ", "Direito"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CanonicalName(tt.input); got != tt.want {
				t.Errorf("CanonicalName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeriveIDStability(t *testing.T) {
	t.Parallel()

	variants := []string{
		"Logística",
		"logistica",
		"Tecnologia em Logística",
	}
	want := DeriveID(CanonicalName(variants[0]))
	for _, v := range variants {
		if got := DeriveID(CanonicalName(v)); got != want {
			t.Errorf("DeriveID(CanonicalName(%q)) = %q, want %q", v, got, want)
		}
	}
	if want != "tecnologia_em_logistica" {
		t.Errorf("unexpected slug %q", want)
	}
}

func TestDegreeOf(t *testing.T) {
	t.Parallel()

	if DegreeOf("Tecnologia em Marketing") != DegreeTecnologo {
		t.Error("tecnologo prefix not detected")
	}
	if DegreeOf("Direito") != DegreeUndefined {
		t.Error("bacharelado should be nao_definido")
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	raw := RawOffers{
		taxonomy.UnitSede: {
			taxonomy.ModalityPresencial: {
				{Name: "Direito", Shift: taxonomy.ShiftMatutino},
				{Name: "Direito", Shift: taxonomy.ShiftNoturno},
				{Name: "Administração", Shift: taxonomy.ShiftMatutino},
				{Name: "Logística", Shift: taxonomy.ShiftNoturno},
				{Name: "", Shift: taxonomy.ShiftNoturno}, // malformed, skipped
			},
			taxonomy.ModalitySemipresencial: {
				{Name: "Nutrição"},
				{Name: "Farmácia"},
			},
			taxonomy.ModalityEAD: {
				{Name: "Administração"},
			},
			taxonomy.ModalityHibrido: {
				{Name: "Biomedicina"}, // no shift in source, defaults to Noturno
			},
		},
	}

	res := Build(raw)

	t.Run("Catalog covers every offered course", func(t *testing.T) {
		for _, modalities := range res.Offers {
			for _, offerings := range modalities {
				for _, off := range offerings {
					if _, ok := res.Catalog[off.CourseID]; !ok {
						t.Errorf("offering references unknown course %q", off.CourseID)
					}
					if len(off.Shifts) == 0 {
						t.Errorf("offering %q has empty shift set", off.CourseID)
					}
				}
			}
		}
	})

	t.Run("Malformed items are skipped", func(t *testing.T) {
		if res.Skipped != 1 {
			t.Errorf("Skipped = %d, want 1", res.Skipped)
		}
	})

	t.Run("Shifts accumulate as a set union", func(t *testing.T) {
		pres := res.Offers[taxonomy.UnitSede][taxonomy.ModalityPresencial]
		var direito *Offering
		for i := range pres {
			if res.Catalog[pres[i].CourseID].Name == "Direito" {
				direito = &pres[i]
			}
		}
		if direito == nil {
			t.Fatal("Direito not found in presencial bucket")
		}
		if len(direito.Shifts) != 2 ||
			direito.Shifts[0] != taxonomy.ShiftMatutino ||
			direito.Shifts[1] != taxonomy.ShiftNoturno {
			t.Errorf("Direito shifts = %v", direito.Shifts)
		}
	})

	t.Run("Semipresencial forces Noturno and Flex", func(t *testing.T) {
		for _, off := range res.Offers[taxonomy.UnitSede][taxonomy.ModalitySemipresencial] {
			if len(off.Shifts) != 2 ||
				off.Shifts[0] != taxonomy.ShiftNoturno ||
				off.Shifts[1] != taxonomy.ShiftFlex {
				t.Errorf("%s shifts = %v, want [Noturno Flex]", off.CourseID, off.Shifts)
			}
		}
	})

	t.Run("EAD forces Online", func(t *testing.T) {
		for _, off := range res.Offers[taxonomy.UnitSede][taxonomy.ModalityEAD] {
			if len(off.Shifts) != 1 || off.Shifts[0] != taxonomy.ShiftOnline {
				t.Errorf("%s shifts = %v, want [Online]", off.CourseID, off.Shifts)
			}
		}
	})

	t.Run("Missing shift defaults to Noturno", func(t *testing.T) {
		hib := res.Offers[taxonomy.UnitSede][taxonomy.ModalityHibrido]
		if len(hib) != 1 || len(hib[0].Shifts) != 1 || hib[0].Shifts[0] != taxonomy.ShiftNoturno {
			t.Errorf("hibrido offerings = %+v", hib)
		}
	})

	t.Run("Bucket sorted by canonical name", func(t *testing.T) {
		pres := res.Offers[taxonomy.UnitSede][taxonomy.ModalityPresencial]
		names := make([]string, len(pres))
		for i, off := range pres {
			names[i] = res.Catalog[off.CourseID].Name
		}
		want := []string{"Administração", "Direito", "Tecnologia em Logística"}
		if len(names) != len(want) {
			t.Fatalf("names = %v", names)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
			}
		}
	})
}

func TestBuildDeterministic(t *testing.T) {
	t.Parallel()

	raw := RawOffers{
		taxonomy.UnitSul: {
			taxonomy.ModalityPresencial: {
				{Name: "Psicologia", Shift: taxonomy.ShiftNoturno},
				{Name: "Pedagogia", Shift: taxonomy.ShiftMatutino},
				{Name: "psicologia", Shift: taxonomy.ShiftMatutino},
			},
		},
	}

	a := Build(raw)
	b := Build(raw)

	offA := a.Offers[taxonomy.UnitSul][taxonomy.ModalityPresencial]
	offB := b.Offers[taxonomy.UnitSul][taxonomy.ModalityPresencial]
	if len(offA) != len(offB) {
		t.Fatalf("lengths differ: %d vs %d", len(offA), len(offB))
	}
	for i := range offA {
		if offA[i].CourseID != offB[i].CourseID {
			t.Errorf("order differs at %d: %q vs %q", i, offA[i].CourseID, offB[i].CourseID)
		}
	}
}
