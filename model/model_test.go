package model

import (
	"errors"
	"testing"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/value"
)

func TestConstructorsForceKind(t *testing.T) {
	o := NewObject(ids.Programme(0x1001), "obj")
	if o.ID() != ids.Object(0x1001) {
		t.Fatalf("ID() = %v, want AO_1001", o.ID())
	}
	o.SetID(ids.Content(0x1002))
	if o.ID() != ids.Object(0x1002) {
		t.Fatalf("SetID() changed kind: %v", o.ID())
	}
}

func TestPackFormatHOAVariant(t *testing.T) {
	hoa := NewPackFormat(ids.PackFormat(value.TypeHOA, 0x1001), "hoa")
	if hoa.HOA == nil {
		t.Fatal("HOA pack format without HOA parameters")
	}
	objects := NewPackFormat(ids.PackFormat(value.TypeObjects, 0x1001), "obj")
	if objects.HOA != nil {
		t.Fatal("objects pack format with HOA parameters")
	}
	if objects.Type() != value.TypeObjects {
		t.Fatalf("Type() = %v, want Objects", objects.Type())
	}
}

func TestAddBlockChecksType(t *testing.T) {
	ch := NewChannelFormat(ids.ChannelFormat(value.TypeObjects, 0x1001), "ch")
	if err := ch.AddBlock(NewObjectsBlock(nil)); err != nil {
		t.Fatalf("AddBlock(objects) error = %v", err)
	}
	err := ch.AddBlock(&BinauralBlock{})
	if !errors.Is(err, admerrors.ErrTypeMismatch) {
		t.Fatalf("AddBlock(binaural) error = %v, want %v", err, admerrors.ErrTypeMismatch)
	}
	if len(ch.Blocks()) != 1 {
		t.Fatalf("Blocks() = %d, want 1", len(ch.Blocks()))
	}
	if _, ok := ch.Blocks()[0].(*ObjectsBlock).Position.(*SphericalPosition); !ok {
		t.Fatal("NewObjectsBlock(nil) should default to a spherical position")
	}
}

func TestAttachAndEdges(t *testing.T) {
	a := NewObject(ids.Object(0x1001), "a")
	b := NewObject(ids.Object(0x1002), "b")
	pack := NewPackFormat(ids.PackFormat(value.TypeObjects, 0x1001), "p")

	if err := Attach(a, RoleObjectComplementary, b); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if err := Attach(b, RoleObjectComplementary, a); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if err := Attach(a, RoleObjectPackFormat, pack); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if err := Attach(a, RoleObjectPackFormat, pack); err != nil {
		t.Fatalf("Attach() repeated error = %v", err)
	}
	if a.Complementary()[0] != b || b.Complementary()[0] != a {
		t.Fatal("complementary cycle not attached")
	}

	edges := Edges(a)
	if len(edges) != 2 {
		t.Fatalf("Edges() = %d, want 2", len(edges))
	}
	if edges[0].Role != RoleObjectComplementary || edges[1].Target != Element(pack) {
		t.Fatalf("Edges() = %+v", edges)
	}

	if err := Attach(a, RoleProgrammeContent, b); err == nil {
		t.Fatal("Attach() with wrong source kind succeeded")
	}
}

func TestSingleValuedRoleOverwrites(t *testing.T) {
	uid := NewTrackUID(ids.TrackUID(1))
	first := NewTrackFormat(ids.TrackFormat(value.TypeObjects, 0x1001, 1), "t1", value.FormatPCM)
	second := NewTrackFormat(ids.TrackFormat(value.TypeObjects, 0x1002, 1), "t2", value.FormatPCM)
	if err := Attach(uid, RoleTrackUIDTrackFormat, first); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if err := Attach(uid, RoleTrackUIDTrackFormat, second); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if uid.TrackFormat() != second {
		t.Fatalf("TrackFormat() = %v, want second", uid.TrackFormat().ID())
	}
	if got := len(Edges(uid)); got != 1 {
		t.Fatalf("Edges() = %d, want 1", got)
	}
}

func TestRoles(t *testing.T) {
	roles := Roles()
	if roles[0] != RoleProgrammeContent || roles[len(roles)-1] != RoleStreamFormatTrackFormat {
		t.Fatalf("Roles() order = %v", roles)
	}
	for _, r := range roles {
		if r.Multi() && r.Source() == ids.KindTrackUID {
			t.Fatalf("%v should be single-valued", r)
		}
	}
	if RoleObjectComplementary.RefElement() != "audioComplementaryObjectIDRef" {
		t.Fatalf("RefElement() = %q", RoleObjectComplementary.RefElement())
	}
}
