package services

import (
	"testing"

	"temple-backend/utils"
)

func TestCatalogSizes(t *testing.T) {
	if got := len(Sevas()); got != 38 {
		t.Fatalf("seva catalog has %d entries, want 38", got)
	}
	if got := len(Halls()); got != 5 {
		t.Fatalf("hall catalog has %d entries, want 5", got)
	}
}

func TestCatalogCostsParseOrAreContactOffice(t *testing.T) {
	for _, s := range Sevas() {
		if s.Cost == "Contact Office" {
			continue
		}
		if _, err := utils.ParseRupees(s.Cost); err != nil {
			t.Fatalf("seva %q has unparsable cost %q: %v", s.Name, s.Cost, err)
		}
	}
	for _, h := range Halls() {
		if _, err := utils.ParseRupees(h.Cost); err != nil {
			t.Fatalf("hall %q has unparsable cost %q: %v", h.Name, h.Cost, err)
		}
	}
}

func TestFindSeva(t *testing.T) {
	s, err := FindSeva(1)
	if err != nil {
		t.Fatalf("FindSeva(1): %v", err)
	}
	if s.Name != "Panchamrutha Abhisheka" {
		t.Fatalf("FindSeva(1) = %q", s.Name)
	}
	if _, err := FindSeva(999); err == nil {
		t.Fatal("FindSeva(999) should fail")
	}
}

func TestFindSevaByName(t *testing.T) {
	s, err := FindSevaByName("Tirtha Prasada (One Person)")
	if err != nil {
		t.Fatalf("FindSevaByName: %v", err)
	}
	if s.Cost != "₹250" {
		t.Fatalf("unexpected cost %q", s.Cost)
	}
	if _, err := FindSevaByName("No Such Seva"); err == nil {
		t.Fatal("unknown name should fail")
	}
}

func TestFindHallByName(t *testing.T) {
	h, err := FindHallByName("Main Prayer Hall")
	if err != nil {
		t.Fatalf("FindHallByName: %v", err)
	}
	if h.Cost != "₹5,000" {
		t.Fatalf("unexpected cost %q", h.Cost)
	}
}

func TestCatalogCopiesAreIsolated(t *testing.T) {
	list := Sevas()
	list[0].Name = "mutated"
	if fresh := Sevas(); fresh[0].Name == "mutated" {
		t.Fatal("Sevas() must return a copy")
	}
}
