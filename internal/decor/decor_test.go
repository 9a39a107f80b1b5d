package decor

import (
	"reflect"
	"slices"
	"testing"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

func setup(t *testing.T) (*Decorator, *gamedata.Catalog) {
	t.Helper()
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return New(catalog), catalog
}

func mustTheme(t *testing.T, c *gamedata.Catalog, id string) *gamedata.ThemeDef {
	t.Helper()
	th, err := c.Themes.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	return th
}

func TestAssignDesignation(t *testing.T) {
	d, c := setup(t)
	crypt := mustTheme(t, c, "bone-crypt")
	r := rng.New(17)

	types := map[string]int{}
	for i := 0; i < 500; i++ {
		room := d.AssignDesignation(world.Room{X: 1, Y: 1, Width: 5, Height: 5}, r, crypt)
		def := c.Designations.Get(room.Designation)
		if def == nil {
			t.Fatalf("Unknown designation %q", room.Designation)
		}
		if room.RoomType != def.Type || room.LootTable != def.LootTable || room.DecorationChance != def.DecorationChance {
			t.Errorf("Room metadata does not match %s: %+v", def.ID, room)
		}
		if !reflect.DeepEqual(room.Features, def.Features) {
			t.Errorf("Features %v, want %v", room.Features, def.Features)
		}
		types[room.RoomType]++
	}

	for _, want := range []string{"combat", "treasure", "utility", "special", "bone_crypt"} {
		if types[want] == 0 {
			t.Errorf("Room type %s never assigned in 500 draws", want)
		}
	}
	if types["dark_dimension"] != 0 {
		t.Error("bone-crypt dungeon assigned a dark_dimension room")
	}
}

func TestDecorate(t *testing.T) {
	d, c := setup(t)

	vault := c.Designations.Get("VAULT")
	trapped := 0
	for seed := int64(1); seed <= 100; seed++ {
		room := d.Decorate(world.Room{Designation: "VAULT"}, rng.New(seed))
		if len(room.Decorations) < 1 || len(room.Decorations) > 3 {
			t.Errorf("seed %d: %d decorations, want 1..3", seed, len(room.Decorations))
		}
		for _, dec := range room.Decorations {
			if !slices.Contains(vault.Features, dec) {
				t.Errorf("seed %d: decoration %q not a vault feature", seed, dec)
			}
		}
		if room.Trap != nil {
			trapped++
			if room.Trap.Name == "" || room.Trap.Discovered {
				t.Errorf("seed %d: malformed trap %+v", seed, room.Trap)
			}
		}
	}
	if trapped == 0 || trapped == 100 {
		t.Errorf("Expected roughly half the vaults trapped, got %d of 100", trapped)
	}

	plain := world.Room{X: 4}
	if got := d.Decorate(plain, rng.New(1)); !reflect.DeepEqual(got, plain) {
		t.Error("Decorate changed a room without a designation")
	}
}

func TestApplyTheme(t *testing.T) {
	d, c := setup(t)
	dark := mustTheme(t, c, "dark-dimension")

	room := world.Room{Designation: "RITUAL_CHAMBER", Decorations: []string{"altar"}}
	got := d.ApplyTheme(room, rng.New(3), dark)

	if got.Style == nil || got.Style.Floor != "#3a3a5e" || got.Style.Wall != "#1a1a2e" {
		t.Errorf("Unexpected style %+v", got.Style)
	}
	if got.Decorations[0] != "altar" {
		t.Errorf("Existing decorations not kept: %v", got.Decorations)
	}

	seen := map[string]bool{}
	for _, dec := range got.Decorations {
		if seen[dec] {
			t.Errorf("Duplicate decoration %q", dec)
		}
		seen[dec] = true
	}
	if len(room.Decorations) != 1 {
		t.Error("ApplyTheme modified the input room's decorations")
	}
}

func TestThemeDecorations(t *testing.T) {
	d, c := setup(t)
	library := mustTheme(t, c, "library")

	pool := append(append([]string(nil), c.Themes.UniversalDecorations()...), library.RoomDecorations...)
	got := d.ThemeDecorations(rng.New(9), library, 6)
	if len(got) == 0 || len(got) > 6 {
		t.Fatalf("Expected 1..6 decorations, got %v", got)
	}
	for _, dec := range got {
		if !slices.Contains(pool, dec) {
			t.Errorf("Decoration %q not in pool", dec)
		}
	}

	again := d.ThemeDecorations(rng.New(9), library, 6)
	if !reflect.DeepEqual(got, again) {
		t.Error("ThemeDecorations not reproducible")
	}
	if d.ThemeDecorations(rng.New(1), nil, 3) != nil {
		t.Error("Expected nil without a theme")
	}
}

func TestRoomsIsDeterministic(t *testing.T) {
	d, c := setup(t)
	standard := mustTheme(t, c, "standard")
	rooms := []world.Room{{X: 1, Y: 1, Width: 4, Height: 4}, {X: 8, Y: 8, Width: 6, Height: 5}, {X: 20, Y: 3, Width: 3, Height: 7}}

	a := d.Rooms(rooms, rng.New(44), standard)
	b := d.Rooms(rooms, rng.New(44), standard)
	if !reflect.DeepEqual(a, b) {
		t.Error("Rooms is not reproducible for the same seed")
	}
	for i, room := range a {
		if room.Designation == "" || room.Style == nil {
			t.Errorf("Room %d not dressed: %+v", i, room)
		}
		if !reflect.DeepEqual(room.Bounds(), rooms[i].Bounds()) {
			t.Errorf("Room %d geometry changed", i)
		}
	}
	if rooms[0].Designation != "" {
		t.Error("Rooms modified its input")
	}
}
