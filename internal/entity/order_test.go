package entity

import "testing"

func TestKolomVoorStatus(t *testing.T) {
	cases := map[string]string{
		StatusPrijsvraag:         KolomOfferte,
		StatusGeteld:             KolomOfferte,
		StatusOfferteVerstuurd:   KolomOfferte,
		StatusGoedgekeurd:        KolomVoorbereiding,
		StatusInProductie:        KolomProductie,
		StatusKwaliteitscontrole: KolomProductie,
		StatusKlaarVoorPlaatsing: KolomPlaatsing,
		StatusInPlaatsing:        KolomPlaatsing,
		StatusGeplaatst:          KolomAfgerond,
		StatusOpgeleverd:         KolomAfgerond,
	}
	for status, want := range cases {
		if got := KolomVoorStatus(status); got != want {
			t.Errorf("KolomVoorStatus(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestKolomVoorStatusUnknown(t *testing.T) {
	if got := KolomVoorStatus("niet_bestaand"); got != KolomOfferte {
		t.Errorf("unknown status mapped to %q, want %q", got, KolomOfferte)
	}
	if got := KolomVoorStatus(""); got != KolomOfferte {
		t.Errorf("empty status mapped to %q, want %q", got, KolomOfferte)
	}
}

func TestDropStatus(t *testing.T) {
	cases := map[string]string{
		KolomOfferte:       StatusPrijsvraag,
		KolomVoorbereiding: StatusGoedgekeurd,
		KolomProductie:     StatusInProductie,
		KolomPlaatsing:     StatusKlaarVoorPlaatsing,
		KolomAfgerond:      StatusOpgeleverd,
	}
	for kolom, want := range cases {
		if got := DropStatus(kolom); got != want {
			t.Errorf("DropStatus(%q) = %q, want %q", kolom, got, want)
		}
	}
}

func TestGeldigeStatus(t *testing.T) {
	for _, status := range StatusVolgorde {
		if !GeldigeStatus(status) {
			t.Errorf("GeldigeStatus(%q) = false, want true", status)
		}
	}
	if GeldigeStatus("offerte") {
		t.Error("column name accepted as status")
	}
	if GeldigeStatus("") {
		t.Error("empty status accepted")
	}
}

func TestKanNaarProductie(t *testing.T) {
	order := &Order{Status: StatusGoedgekeurd}
	if order.KanNaarProductie() {
		t.Error("order without flags should not be production ready")
	}
	order.TekeningGoedgekeurd = true
	if order.KanNaarProductie() {
		t.Error("drawing approval alone should not open production")
	}
	order.MateriaalBinnen = true
	if !order.KanNaarProductie() {
		t.Error("both flags set should open production")
	}
}

func TestStatussenVoorKolomCoversAll(t *testing.T) {
	seen := map[string]bool{}
	for _, kolom := range KolomVolgorde {
		for _, status := range StatussenVoorKolom(kolom) {
			if seen[status] {
				t.Errorf("status %q appears in more than one column", status)
			}
			seen[status] = true
		}
	}
	if len(seen) != len(StatusVolgorde) {
		t.Errorf("columns cover %d statuses, want %d", len(seen), len(StatusVolgorde))
	}
}
