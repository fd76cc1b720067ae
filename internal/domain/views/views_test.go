package views

import (
	"testing"

	"animal-collection/internal/domain/animals"
)

func animalsOfBreed(breed string, n int) []animals.Animal {
	out := make([]animals.Animal, n)
	for i := range out {
		out[i] = animals.Animal{Type: "Dog", Breed: breed}
	}
	return out
}

func TestBreedDistribution_FoldsSmallBreedsIntoOther(t *testing.T) {
	// 995 de X y 5 de Y (0.5%): Y desaparece y aparece Other.
	list := append(animalsOfBreed("X", 995), animalsOfBreed("Y", 5)...)

	dist := BreedDistribution(list)

	if dist["X"] != 995 {
		t.Fatalf("expected X=995, got %d", dist["X"])
	}
	if dist[OtherBucket] != 5 {
		t.Fatalf("expected Other=5, got %d", dist[OtherBucket])
	}
	if _, ok := dist["Y"]; ok {
		t.Fatalf("Y should be folded into Other")
	}
	if len(dist) != 2 {
		t.Fatalf("expected exactly X and Other, got %#v", dist)
	}
}

func TestBreedDistribution_NoOtherWhenNothingFolds(t *testing.T) {
	list := append(animalsOfBreed("X", 60), animalsOfBreed("Y", 40)...)

	dist := BreedDistribution(list)

	if _, ok := dist[OtherBucket]; ok {
		t.Fatalf("Other should only appear when something folded: %#v", dist)
	}
	if dist["X"] != 60 || dist["Y"] != 40 {
		t.Fatalf("unexpected counts: %#v", dist)
	}
}

func TestBreedDistribution_SkipsRecordsWithoutBreed(t *testing.T) {
	list := append(animalsOfBreed("X", 3), animals.Animal{Type: "Dog"})

	dist := BreedDistribution(list)

	if len(dist) != 1 || dist["X"] != 3 {
		t.Fatalf("breedless records should not count: %#v", dist)
	}
}

func TestBreedDistribution_EmptySet(t *testing.T) {
	if dist := BreedDistribution(nil); len(dist) != 0 {
		t.Fatalf("expected empty distribution, got %#v", dist)
	}
}

func TestLookupCoordinates_ReturnsTuple(t *testing.T) {
	lat, long := 30.75, -97.48
	list := []animals.Animal{
		{Name: "Rex", Breed: "Beagle", Lat: &lat, Long: &long},
	}

	loc, ok := LookupCoordinates(list, 0)
	if !ok {
		t.Fatalf("expected a location")
	}
	if loc.Lat != lat || loc.Long != long || loc.Name != "Rex" || loc.Breed != "Beagle" {
		t.Fatalf("unexpected location: %#v", loc)
	}
}

func TestLookupCoordinates_OutOfRangeIsEmptyNotError(t *testing.T) {
	lat, long := 1.0, 2.0
	list := []animals.Animal{{Name: "Rex", Lat: &lat, Long: &long}}

	if _, ok := LookupCoordinates(list, 1); ok {
		t.Fatalf("index past the end should be empty")
	}
	if _, ok := LookupCoordinates(list, -1); ok {
		t.Fatalf("negative index should be empty")
	}
	if _, ok := LookupCoordinates(nil, 0); ok {
		t.Fatalf("empty set should be empty")
	}
}

func TestLookupCoordinates_MissingCoordinatesIsEmpty(t *testing.T) {
	lat := 1.0
	list := []animals.Animal{
		{Name: "SinMapa"},
		{Name: "SoloLat", Lat: &lat},
	}

	if _, ok := LookupCoordinates(list, 0); ok {
		t.Fatalf("record without coordinates should be empty")
	}
	if _, ok := LookupCoordinates(list, 1); ok {
		t.Fatalf("record with only lat should be empty")
	}
}
