package pipeloop_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/internal/samples"
)

// TestRender_Golden compares rendered fixtures against their expected drawings.
func TestRender_Golden(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Square", samples.Square, "┌┐\n└┘\n"},
		{"Complex", samples.Complex, "" +
			"OO┌┐O\n" +
			"O┌┘│O\n" +
			"┌┘I└┐\n" +
			"│┌──┘\n" +
			"└┘OOO\n"},
		{"Squeeze", samples.Squeeze, "" +
			"OOOOOOOOOO\n" +
			"O┌──────┐O\n" +
			"O│┌────┐│O\n" +
			"O││oooo││O\n" +
			"O││oooo││O\n" +
			"O│└─┐┌─┘│O\n" +
			"O│II││II│O\n" +
			"O└──┘└──┘O\n" +
			"OOOOOOOOOO\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := pipeloop.SolveString(tc.in)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, pipeloop.Render(&buf, rep))
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRender_Nil rejects an empty report.
func TestRender_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, pipeloop.Render(&buf, nil), pipeloop.ErrReportNil)
	require.ErrorIs(t, pipeloop.Render(&buf, &pipeloop.Report{}), pipeloop.ErrReportNil)
}
