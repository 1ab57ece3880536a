package entity

import (
	"reflect"
	"testing"
)

func TestIntermediary_Update(t *testing.T) {
	listing := &Listing{
		Address:  "7 Quarry Lane",
		District: "Old Town",
		Rooms:    2,
	}

	tests := []struct {
		name      string
		finished  bool
		wantLines []string
	}{
		{
			name:      "unfinished listing produces no output",
			finished:  false,
			wantLines: nil,
		},
		{
			name:     "finished listing produces two lines in order",
			finished: true,
			wantLines: []string{
				`Intermediary: publishing the updated listing "7 Quarry Lane" (Old Town, 2 rooms)`,
				`Intermediary: calling prospective buyers about "7 Quarry Lane"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := &recordingDispatcher{}
			intermediary := NewIntermediaryObserver(dispatcher)

			intermediary.Update(listing, tt.finished)

			if !reflect.DeepEqual(dispatcher.lines, tt.wantLines) {
				t.Errorf("Update() lines = %q, want %q", dispatcher.lines, tt.wantLines)
			}
		})
	}
}
