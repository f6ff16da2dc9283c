package dosha

import "testing"

func TestEvaluateKujaCleanChart(t *testing.T) {
	st := EvaluateKuja(KujaPoints{
		MarsHouse:  5,
		MoonHouse:  5,
		VenusHouse: 5,
		MarsLon:    130, // Leo
	})
	if st.Lagna != Clean || st.Chandra != Clean || st.Shukra != Clean {
		t.Fatalf("axes = %+v, want all Clean", st)
	}
	if st.Total != NotAfflicted {
		t.Fatalf("Total=%q, want %q", st.Total, NotAfflicted)
	}
}

func TestEvaluateKujaAfflictedNoCancellation(t *testing.T) {
	// Mars in the 7th from Lagna, in Gemini: no dignity, no benefic sign,
	// no benefic anywhere near.
	st := EvaluateKuja(KujaPoints{
		MarsHouse:  7,
		MoonHouse:  1,
		VenusHouse: 1,
		MarsLon:    70, // Gemini
		MoonLon:    10,
		SunLon:     20,
		Bodies:     map[string]float64{"Jupiter": 100, "Venus": 200},
		D9Bodies:   map[string]float64{"Mars": 135}, // Leo in D9
	})
	if st.Lagna != Afflicted {
		t.Fatalf("Lagna=%q, want Afflicted", st.Lagna)
	}
	if st.Total != Afflicted {
		t.Fatalf("Total=%q, want Afflicted", st.Total)
	}
}

func TestKujaCancellationOwnSignRegardlessOfAxis(t *testing.T) {
	// Mars at 0° sits in Aries, its own sign: cancellation holds no matter
	// which axis raised the flag.
	cancelled, reason := CheckKujaCancellation(KujaPoints{MarsLon: 0})
	if !cancelled {
		t.Fatalf("expected cancellation for Mars in Aries")
	}
	if reason != "Cancelled (Own Sign D1)" {
		t.Fatalf("reason=%q", reason)
	}
}

func TestKujaCancellationLadderOrder(t *testing.T) {
	cases := []struct {
		name   string
		points KujaPoints
		reason string
	}{
		{
			name:   "exalted D1",
			points: KujaPoints{MarsLon: 275}, // Capricorn
			reason: "Cancelled (Exalted D1)",
		},
		{
			name:   "debilitated D1",
			points: KujaPoints{MarsLon: 100}, // Cancer
			reason: "Cancelled (Debilitated D1)",
		},
		{
			name:   "benefic sign D1",
			points: KujaPoints{MarsLon: 130}, // Leo
			reason: "Cancelled (Benefic Sign D1)",
		},
		{
			name: "conjunction beats aspect",
			points: KujaPoints{
				MarsLon: 65, // Gemini
				Bodies:  map[string]float64{"Jupiter": 70, "Venus": 250},
			},
			reason: "Cancelled (Conj. Jupiter D1)",
		},
		{
			name: "seventh-sign aspect from Venus",
			points: KujaPoints{
				MarsLon: 65, // Gemini
				Bodies:  map[string]float64{"Jupiter": 100, "Venus": 250}, // Venus in Sagittarius
			},
			reason: "Cancelled (Aspect Venus D1)",
		},
		{
			name: "jupiter trine aspect",
			points: KujaPoints{
				MarsLon: 65,                                  // Gemini
				Bodies:  map[string]float64{"Jupiter": 315}, // Aquarius; Gemini is its 5th
			},
			reason: "Cancelled (Aspect Jupiter D1)",
		},
		{
			name: "own sign in D9",
			points: KujaPoints{
				MarsLon:  65,
				Bodies:   map[string]float64{"Jupiter": 100},
				D9Bodies: map[string]float64{"Mars": 220}, // Scorpio in D9
			},
			reason: "Cancelled (Own Sign D9)",
		},
	}
	for _, c := range cases {
		cancelled, reason := CheckKujaCancellation(c.points)
		if !cancelled {
			t.Fatalf("%s: expected cancellation", c.name)
		}
		if reason != c.reason {
			t.Fatalf("%s: reason=%q, want %q", c.name, reason, c.reason)
		}
	}
}

func TestKujaCancellationIdempotent(t *testing.T) {
	p := KujaPoints{
		MarsLon: 65,
		Bodies:  map[string]float64{"Jupiter": 70, "Venus": 250},
	}
	_, first := CheckKujaCancellation(p)
	for i := 0; i < 3; i++ {
		if _, again := CheckKujaCancellation(p); again != first {
			t.Fatalf("reason changed across evaluations: %q vs %q", first, again)
		}
	}
}

func TestMoonActsAsBeneficOnlyWhenOpposingSun(t *testing.T) {
	base := KujaPoints{
		MarsLon: 65, // Gemini, no dignity or benefic sign
		MoonLon: 68, // within 8° of Mars
	}

	// Moon near the Sun: not a benefic, no cancellation.
	p := base
	p.SunLon = 75
	if cancelled, _ := CheckKujaCancellation(p); cancelled {
		t.Fatalf("new-moon Moon must not cancel")
	}

	// Moon opposite the Sun: full, benefic, cancels by conjunction.
	p = base
	p.SunLon = 248
	cancelled, reason := CheckKujaCancellation(p)
	if !cancelled {
		t.Fatalf("full Moon conjunction should cancel")
	}
	if reason != "Cancelled (Conj. Moon D1)" {
		t.Fatalf("reason=%q", reason)
	}
}

func TestEvaluateRahu(t *testing.T) {
	cases := []struct {
		rahuHouse, moonHouse  int
		lagna, chandra, total string
	}{
		{1, 2, Afflicted, Clean, Afflicted},     // 1st from Lagna
		{5, 3, Afflicted, Clean, Afflicted},     // 5th from Lagna
		{7, 3, Clean, Afflicted, Afflicted},     // 5th from Moon
		{2, 3, Clean, Clean, NotAfflicted},      // 12th from Moon, 2nd from Lagna
		{4, 12, Clean, Afflicted, Afflicted},    // 5th from Moon
		{11, 4, Clean, Clean, NotAfflicted},     // 8th from Moon
		{1, 9, Afflicted, Afflicted, Afflicted}, // both axes
	}
	for _, c := range cases {
		st := EvaluateRahu(c.rahuHouse, c.moonHouse)
		if st.Lagna != c.lagna || st.Chandra != c.chandra {
			t.Fatalf("EvaluateRahu(%d,%d) axes = %q/%q, want %q/%q",
				c.rahuHouse, c.moonHouse, st.Lagna, st.Chandra, c.lagna, c.chandra)
		}
		if st.Total != c.total {
			t.Fatalf("EvaluateRahu(%d,%d).Total=%q, want %q", c.rahuHouse, c.moonHouse, st.Total, c.total)
		}
	}
}
