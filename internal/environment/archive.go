package environment

import (
	"encoding/json"
	"io"

	"github.com/golang/snappy"
	"github.com/mugiliam/saasbench/internal/workspace"
)

// Archive is the offline-debugging dump of one environment run: the full
// snapshot history plus the conversation log.
type Archive struct {
	Snapshots    []*workspace.State `json:"snapshots"`
	Conversation []Entry            `json:"conversation"`
}

// WriteArchive serializes the environment's history as snappy-compressed
// JSON for offline inspection.
func (e *Environment) WriteArchive(w io.Writer) error {
	archive := Archive{
		Snapshots:    e.snapshots,
		Conversation: e.conversation,
	}
	data, err := json.Marshal(archive)
	if err != nil {
		return err
	}
	_, err = w.Write(snappy.Encode(nil, data))
	return err
}

// ReadArchive decodes an archive previously written with WriteArchive.
func ReadArchive(r io.Reader) (*Archive, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, err
	}
	archive := &Archive{}
	if err := json.Unmarshal(data, archive); err != nil {
		return nil, err
	}
	return archive, nil
}
