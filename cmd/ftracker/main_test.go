package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasjlepore/ftracker/pipeline"
)

func TestRunDemoOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	want := "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n" +
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.\n" +
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.\n"
	assert.Equal(t, want, stdout.String())
}

func TestRunJSONOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-json"}, nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var res pipeline.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	require.Len(t, res.Summaries, 3)
	assert.Equal(t, "RUN", res.Summaries[1].Code)
	assert.InDelta(t, 9.75, res.Summaries[1].Distance, 1e-9)
}

func TestRunStdinStopsAtUnknownCode(t *testing.T) {
	in := `{"code":"RUN","values":[15000,1,75]}
{"code":"BIKE","values":[1,1,1]}
`
	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", "-"}, strings.NewReader(in), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"))
	assert.Contains(t, stdout.String(), "Running")
	assert.Contains(t, stderr.String(), `unknown activity "BIKE"`)
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "xml"},
		{"extra"},
		{"-fit", "ride.fit"},
	} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(args, nil, &stdout, &stderr), args)
		assert.Empty(t, stdout.String())
	}
}
