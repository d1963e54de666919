package document

import (
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/model"
	"github.com/jacoelho/adm/value"
)

// SimpleObject is the chain of elements describing one mono Objects track.
type SimpleObject struct {
	Object        *model.Object
	PackFormat    *model.PackFormat
	ChannelFormat *model.ChannelFormat
	StreamFormat  *model.StreamFormat
	TrackFormat   *model.TrackFormat
	TrackUID      *model.TrackUID
}

// AddSimpleObject creates a linked object, pack, channel, stream, track and
// track UID named name and adds them to d.
func (d *Document) AddSimpleObject(name string) (SimpleObject, error) {
	so := SimpleObject{
		Object:        model.NewObject(ids.Object(0), name),
		PackFormat:    model.NewPackFormat(ids.PackFormat(value.TypeObjects, 0), name),
		ChannelFormat: model.NewChannelFormat(ids.ChannelFormat(value.TypeObjects, 0), name),
		StreamFormat:  model.NewStreamFormat(ids.StreamFormat(value.TypeObjects, 0), name, value.FormatPCM),
		TrackFormat:   model.NewTrackFormat(ids.TrackFormat(value.TypeObjects, 0, 0), name, value.FormatPCM),
		TrackUID:      model.NewTrackUID(ids.TrackUID(0)),
	}
	so.Object.AddPackFormat(so.PackFormat)
	so.Object.AddTrackUID(so.TrackUID)
	so.PackFormat.AddChannelFormat(so.ChannelFormat)
	so.StreamFormat.SetChannelFormat(so.ChannelFormat)
	so.StreamFormat.AddTrackFormat(so.TrackFormat)
	so.TrackFormat.SetStreamFormat(so.StreamFormat)
	so.TrackUID.SetTrackFormat(so.TrackFormat)
	so.TrackUID.SetPackFormat(so.PackFormat)

	for _, el := range []model.Element{so.Object, so.PackFormat, so.ChannelFormat, so.StreamFormat, so.TrackFormat, so.TrackUID} {
		if err := d.Add(el); err != nil {
			return SimpleObject{}, err
		}
	}
	return so, nil
}
