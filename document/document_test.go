package document

import (
	"errors"
	"testing"

	admerrors "github.com/jacoelho/adm/errors"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

func TestAddAndLookup(t *testing.T) {
	doc := New()
	obj := model.NewObject(ids.Object(0x1001), "obj")
	if err := doc.Add(obj); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	got, err := doc.Lookup(ids.Object(0x1001))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != model.Element(obj) {
		t.Fatalf("Lookup() = %v, want obj", got)
	}
	typed, err := LookupAs[*model.Object](doc, ids.Object(0x1001))
	if err != nil || typed != obj {
		t.Fatalf("LookupAs() = %v, %v", typed, err)
	}
	if _, err := LookupAs[*model.Content](doc, ids.Object(0x1001)); err == nil {
		t.Fatal("LookupAs() with wrong type succeeded")
	}
	if err := doc.Add(obj); err != nil {
		t.Fatalf("re-adding same element error = %v", err)
	}
	if doc.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", doc.Len())
	}
}

func TestLookupMissing(t *testing.T) {
	_, err := New().Lookup(ids.Object(0x1001))
	if !errors.Is(err, admerrors.ErrNotFound) {
		t.Fatalf("Lookup() error = %v, want %v", err, admerrors.ErrNotFound)
	}
}

func TestAddDuplicate(t *testing.T) {
	doc := New()
	if err := doc.Add(model.NewObject(ids.Object(0x1001), "a")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	err := doc.Add(model.NewObject(ids.Object(0x1001), "b"))
	if !errors.Is(err, admerrors.ErrDuplicateID) {
		t.Fatalf("Add() error = %v, want %v", err, admerrors.ErrDuplicateID)
	}
	if doc.Count(ids.KindObject) != 1 {
		t.Fatalf("Count() = %d, want 1", doc.Count(ids.KindObject))
	}
}

func TestSameValueDifferentKindIsNotDuplicate(t *testing.T) {
	doc := New()
	for _, el := range []model.Element{
		model.NewPackFormat(ids.PackFormat(value.TypeObjects, 0x1001), "p"),
		model.NewPackFormat(ids.PackFormat(value.TypeDirectSpeakers, 0x1001), "p"),
		model.NewChannelFormat(ids.ChannelFormat(value.TypeObjects, 0x1001), "c"),
	} {
		if err := doc.Add(el); err != nil {
			t.Fatalf("Add(%v) error = %v", el.ID(), err)
		}
	}
}

func TestAddAssignsPlaceholders(t *testing.T) {
	doc := New()
	if err := doc.Add(model.NewObject(ids.Object(0x1001), "taken")); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	obj := model.NewObject(ids.Object(0), "new")
	if err := doc.Add(obj); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if obj.ID() != ids.Object(0x1002) {
		t.Fatalf("ID() = %v, want AO_1002", obj.ID())
	}

	uid := model.NewTrackUID(ids.TrackUID(0))
	if err := doc.Add(uid); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if uid.ID().String() != "ATU_00000001" {
		t.Fatalf("ID() = %v, want ATU_00000001", uid.ID())
	}

	ch := model.NewChannelFormat(ids.ChannelFormat(value.TypeObjects, 0), "ch")
	if err := ch.AddBlock(model.NewObjectsBlock(nil)); err != nil {
		t.Fatalf("AddBlock() error = %v", err)
	}
	if err := ch.AddBlock(model.NewObjectsBlock(nil)); err != nil {
		t.Fatalf("AddBlock() error = %v", err)
	}
	if err := doc.Add(ch); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := ch.Blocks()[1].Timing().ID.String(); got != "AB_00031001_00000002" {
		t.Fatalf("block ID = %s, want AB_00031001_00000002", got)
	}
}

func TestTypedEnumerationKeepsInsertionOrder(t *testing.T) {
	doc := New()
	for _, v := range []uint32{0x1003, 0x1001, 0x1002} {
		if err := doc.Add(model.NewContent(ids.Content(v), "c")); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	contents := doc.Contents()
	want := []string{"ACO_1003", "ACO_1001", "ACO_1002"}
	for i, c := range contents {
		if c.ID().String() != want[i] {
			t.Fatalf("Contents()[%d] = %s, want %s", i, c.ID(), want[i])
		}
	}
}

func TestAddSimpleObjectAndReassign(t *testing.T) {
	doc := New()
	common := model.NewPackFormat(ids.PackFormat(value.TypeDirectSpeakers, 0x0001), "mono")
	if err := doc.Add(common); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	first, err := doc.AddSimpleObject("first")
	if err != nil {
		t.Fatalf("AddSimpleObject() error = %v", err)
	}
	second, err := doc.AddSimpleObject("second")
	if err != nil {
		t.Fatalf("AddSimpleObject() error = %v", err)
	}
	if first.TrackFormat.StreamFormat() != first.StreamFormat {
		t.Fatal("track format not linked to its stream format")
	}

	if err := doc.Reassign(); err != nil {
		t.Fatalf("Reassign() error = %v", err)
	}

	tests := []struct {
		el   model.Element
		want string
	}{
		{common, "AP_00010001"},
		{first.Object, "AO_1001"},
		{second.Object, "AO_1002"},
		{first.PackFormat, "AP_00031001"},
		{second.ChannelFormat, "AC_00031002"},
		{second.StreamFormat, "AS_00031002"},
		{second.TrackFormat, "AT_00031002_01"},
		{second.TrackUID, "ATU_00000002"},
	}
	for _, tt := range tests {
		if got := tt.el.ID().String(); got != tt.want {
			t.Fatalf("%s ID = %s, want %s", tt.el.Name(), got, tt.want)
		}
		if !doc.Has(tt.el.ID()) {
			t.Fatalf("Has(%s) = false after Reassign", tt.el.ID())
		}
	}
}
