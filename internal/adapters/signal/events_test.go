package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoomEvent(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", `{"type":"draw:join","room":"abc"}`, false},
		{"missing room", `{"type":"draw:join"}`, true},
		{"empty room", `{"type":"draw:join","room":""}`, true},
		{"not json", `draw:join abc`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := decodeRoomEvent([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "abc", string(ev.Room))
		})
	}
}

func TestDecodeStrokeEvent(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		segment bool
		wantErr bool
	}{
		{
			"valid segment",
			`{"type":"draw:segment","room":"r","stroke":{"color":"#fff","size":2,"points":[{"x":1,"y":1},{"x":2,"y":2}]}}`,
			true, false,
		},
		{
			"segment with three points",
			`{"type":"draw:segment","room":"r","stroke":{"color":"#fff","size":2,"points":[{"x":1,"y":1},{"x":2,"y":2},{"x":3,"y":3}]}}`,
			true, true,
		},
		{
			"valid full stroke",
			`{"type":"draw:full","room":"r","stroke":{"color":"#fff","size":2,"points":[{"x":1,"y":1},{"x":2,"y":2},{"x":3,"y":3}]}}`,
			false, false,
		},
		{
			"single point stroke is discarded",
			`{"type":"draw:full","room":"r","stroke":{"color":"#fff","size":2,"points":[{"x":1,"y":1}]}}`,
			false, true,
		},
		{
			"zero points",
			`{"type":"draw:full","room":"r","stroke":{"color":"#fff","size":2,"points":[]}}`,
			false, true,
		},
		{
			"non-positive size",
			`{"type":"draw:full","room":"r","stroke":{"color":"#fff","size":0,"points":[{"x":1,"y":1},{"x":2,"y":2}]}}`,
			false, true,
		},
		{
			"missing room",
			`{"type":"draw:full","stroke":{"color":"#fff","size":2,"points":[{"x":1,"y":1},{"x":2,"y":2}]}}`,
			false, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeStrokeEvent([]byte(tt.data), tt.segment)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeTimerEvent(t *testing.T) {
	ev, err := decodeTimerEvent([]byte(`{"type":"meta:timer","room":"r","remainingMs":0}`))
	require.NoError(t, err)
	assert.Equal(t, int64(0), ev.RemainingMs)

	_, err = decodeTimerEvent([]byte(`{"type":"meta:timer","room":"r","remainingMs":-1}`))
	assert.Error(t, err)

	_, err = decodeTimerEvent([]byte(`{"type":"meta:timer","remainingMs":5}`))
	assert.Error(t, err)
}

func TestDecodeProgressEvent(t *testing.T) {
	ev, err := decodeProgressEvent([]byte(`{"type":"meta:progress","room":"r","progress":{"done":3,"total":5}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"done":3,"total":5}`, string(ev.Progress))

	// Progress is opaque; a bare number is fine.
	_, err = decodeProgressEvent([]byte(`{"type":"meta:progress","room":"r","progress":40}`))
	assert.NoError(t, err)

	_, err = decodeProgressEvent([]byte(`{"type":"meta:progress","room":"r"}`))
	assert.Error(t, err)
}
