package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjoak3/dumptrick/pkg/hearts"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name string
		data string
		want hearts.Action
	}{
		{
			name: "update_name",
			data: `{"action":"update_name","name":"Alice"}`,
			want: hearts.UpdateName{Name: "Alice"},
		},
		{
			name: "start_game",
			data: `{"action":"start_game"}`,
			want: hearts.StartGame{},
		},
		{
			name: "play_card",
			data: `{"action":"play_card","card":"QS"}`,
			want: hearts.PlayCard{Card: "QS"},
		},
		{
			name: "reset_game",
			data: `{"action":"reset_game"}`,
			want: hearts.ResetGame{},
		},
		{
			name: "extra fields ignored",
			data: `{"action":"start_game","name":"Bob","card":"2H"}`,
			want: hearts.StartGame{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeAction([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeActionUnknown(t *testing.T) {
	_, err := decodeAction([]byte(`{"action":"deal_with_it"}`))
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = decodeAction([]byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDecodeActionMalformed(t *testing.T) {
	_, err := decodeAction([]byte(`{"action":`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownAction)
}
