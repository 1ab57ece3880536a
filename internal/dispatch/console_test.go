package dispatch

import (
	"bytes"
	"testing"
)

func TestConsole_Send(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			name:     "no messages",
			messages: nil,
			want:     "",
		},
		{
			name:     "single message",
			messages: []string{"one"},
			want:     "one\n",
		},
		{
			name:     "one line per message",
			messages: []string{"one", "two", "three"},
			want:     "one\ntwo\nthree\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			dispatcher := NewConsole(&buf)

			if err := dispatcher.Send(tt.messages); err != nil {
				t.Fatalf("Send() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Send() wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
