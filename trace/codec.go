package trace

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/radixdlt/manifest-analyzer/value"
)

var wireJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type wireDelta struct {
	Resource   jsoniter.RawMessage `json:"resource"`
	Amount     decimal.Decimal     `json:"amount"`
	AddedIds   []jsoniter.RawMessage `json:"added_ids,omitempty"`
	RemovedIds []jsoniter.RawMessage `json:"removed_ids,omitempty"`
}

type wireEntry struct {
	Index  int         `json:"index"`
	Deltas []wireDelta `json:"deltas"`
}

// Encode marshals a full execution trace to its wire JSON form, one entry
// per instruction index that has recorded changes.
func Encode(t Trace) ([]byte, error) {
	entries := make([]wireEntry, 0, len(t))
	for idx, changes := range t {
		we, err := encodeEntry(idx, changes)
		if err != nil {
			return nil, fmt.Errorf("trace: encode index %d: %w", idx, err)
		}
		entries = append(entries, we)
	}
	return wireJSON.Marshal(entries)
}

// Decode unmarshals a wire-format execution trace.
func Decode(data []byte) (Trace, error) {
	var entries []wireEntry
	if err := wireJSON.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("trace: decode: %w", err)
	}
	t := make(Trace, len(entries))
	for _, we := range entries {
		changes, err := decodeEntry(we)
		if err != nil {
			return nil, fmt.Errorf("trace: decode index %d: %w", we.Index, err)
		}
		t[we.Index] = changes
	}
	return t, nil
}

func encodeEntry(idx int, changes WorktopChanges) (wireEntry, error) {
	we := wireEntry{Index: idx, Deltas: make([]wireDelta, len(changes.Deltas))}
	for i, d := range changes.Deltas {
		wd, err := encodeDelta(d)
		if err != nil {
			return wireEntry{}, err
		}
		we.Deltas[i] = wd
	}
	return we, nil
}

func encodeDelta(d ResourceDelta) (wireDelta, error) {
	resource, err := value.Encode(d.Resource)
	if err != nil {
		return wireDelta{}, err
	}
	added, err := encodeIds(d.AddedIds)
	if err != nil {
		return wireDelta{}, err
	}
	removed, err := encodeIds(d.RemovedIds)
	if err != nil {
		return wireDelta{}, err
	}
	return wireDelta{
		Resource:   jsoniter.RawMessage(resource),
		Amount:     d.Amount,
		AddedIds:   added,
		RemovedIds: removed,
	}, nil
}

func encodeIds(ids []value.NonFungibleLocalId) ([]jsoniter.RawMessage, error) {
	out := make([]jsoniter.RawMessage, len(ids))
	for i, id := range ids {
		raw, err := value.Encode(id)
		if err != nil {
			return nil, err
		}
		out[i] = jsoniter.RawMessage(raw)
	}
	return out, nil
}

func decodeEntry(we wireEntry) (WorktopChanges, error) {
	deltas := make([]ResourceDelta, len(we.Deltas))
	for i, wd := range we.Deltas {
		d, err := decodeDelta(wd)
		if err != nil {
			return WorktopChanges{}, err
		}
		deltas[i] = d
	}
	return WorktopChanges{Deltas: deltas}, nil
}

func decodeDelta(wd wireDelta) (ResourceDelta, error) {
	rv, err := value.Decode(wd.Resource)
	if err != nil {
		return ResourceDelta{}, err
	}
	resource, ok := rv.(value.Address)
	if !ok {
		return ResourceDelta{}, fmt.Errorf("trace: resource: expected address, got %s", rv.Kind())
	}
	added, err := decodeIds(wd.AddedIds)
	if err != nil {
		return ResourceDelta{}, err
	}
	removed, err := decodeIds(wd.RemovedIds)
	if err != nil {
		return ResourceDelta{}, err
	}
	return ResourceDelta{Resource: resource, Amount: wd.Amount, AddedIds: added, RemovedIds: removed}, nil
}

func decodeIds(raws []jsoniter.RawMessage) ([]value.NonFungibleLocalId, error) {
	out := make([]value.NonFungibleLocalId, len(raws))
	for i, raw := range raws {
		v, err := value.Decode(raw)
		if err != nil {
			return nil, err
		}
		id, ok := v.(value.NonFungibleLocalId)
		if !ok {
			return nil, fmt.Errorf("trace: expected non_fungible_local_id, got %s", v.Kind())
		}
		out[i] = id
	}
	return out, nil
}
