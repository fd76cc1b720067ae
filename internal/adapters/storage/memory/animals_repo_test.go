package memory

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"animal-collection/internal/domain/animals"
)

func TestAnimalsRepo_IDsAreSequential(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		id, err := repo.Create(ctx, animals.Animal{Type: "Dog"})
		if err != nil {
			t.Fatalf("Create #%d error: %v", i, err)
		}
		want := fmt.Sprintf("A%06d", i)
		if id != want {
			t.Fatalf("expected id %s, got %s", want, id)
		}
	}
}

func TestAnimalsRepo_RoundTripByID(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	age := 30.5
	in := animals.Animal{Type: "Dog", Name: "Rex", Breed: "Beagle", AgeWeeks: &age}
	id, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.Find(ctx, animals.Predicate{ID: id})
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(got))
	}

	in.ID = id
	if !reflect.DeepEqual(got[0], in) {
		t.Fatalf("round trip mismatch:\n in: %#v\nout: %#v", in, got[0])
	}
}

func TestAnimalsRepo_EmptyPredicateReturnsAllInInsertionOrder(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if _, err := repo.Create(ctx, animals.Animal{Type: "Dog", Name: name}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got, err := repo.Find(ctx, animals.Predicate{})
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 3 || got[0].Name != "a" || got[2].Name != "c" {
		t.Fatalf("expected stable insertion order, got %#v", got)
	}
}

func TestAnimalsRepo_UpdateManyWritesOnlySuppliedFields(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, animals.Animal{Type: "Dog", Name: "Rex", Color: "Brown"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	count, err := repo.UpdateMany(ctx, animals.Predicate{ID: id}, animals.FieldSet{Color: "Black"})
	if err != nil {
		t.Fatalf("UpdateMany error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}

	got, _ := repo.Find(ctx, animals.Predicate{ID: id})
	if got[0].Color != "Black" {
		t.Fatalf("expected color updated, got %#v", got[0])
	}
	if got[0].Name != "Rex" || got[0].Type != "Dog" {
		t.Fatalf("untouched fields must survive, got %#v", got[0])
	}
}

func TestAnimalsRepo_UpdateManyAppliesToEveryMatch(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, animals.Animal{Type: "Dog", Breed: "Beagle"}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	if _, err := repo.Create(ctx, animals.Animal{Type: "Cat", Breed: "Siamese"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	count, err := repo.UpdateMany(ctx, animals.Predicate{Type: "Dog"}, animals.FieldSet{Color: "Mixed"})
	if err != nil {
		t.Fatalf("UpdateMany error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 modified, got %d", count)
	}
}

func TestAnimalsRepo_DeleteThenFindReturnsEmpty(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.Create(ctx, animals.Animal{Type: "Dog", Breed: "Beagle"}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	pred := animals.Predicate{Breed: "Beagle"}
	count, err := repo.DeleteMany(ctx, pred)
	if err != nil {
		t.Fatalf("DeleteMany error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 deleted, got %d", count)
	}

	got, err := repo.Find(ctx, pred)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty set after delete, got %#v", got)
	}

	// El conteo de un segundo delete es cero, no error
	count, err = repo.DeleteMany(ctx, pred)
	if err != nil || count != 0 {
		t.Fatalf("expected zero-count delete, got count=%d err=%v", count, err)
	}
}

func TestAnimalsRepo_IDsContinueAfterDelete(t *testing.T) {
	repo := NewAnimalsRepo()
	ctx := context.Background()

	id1, _ := repo.Create(ctx, animals.Animal{Type: "Dog"})
	if _, err := repo.DeleteMany(ctx, animals.Predicate{ID: id1}); err != nil {
		t.Fatalf("DeleteMany error: %v", err)
	}

	id2, err := repo.Create(ctx, animals.Animal{Type: "Dog"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	// El contador no retrocede: los ids no se reusan.
	if id2 != "A000002" {
		t.Fatalf("expected A000002 after deleting A000001, got %s", id2)
	}
}
