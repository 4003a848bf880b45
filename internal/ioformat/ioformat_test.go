package ioformat_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsilva-dev/dckp-solver/internal/instance"
	"github.com/tsilva-dev/dckp-solver/internal/ioformat"
	"github.com/tsilva-dev/dckp-solver/internal/solution"
)

func TestWriteCSVTo_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	records := []ioformat.Record{
		{Instance: "a.txt", Method: "Greedy_MAX_PROFIT", Profit: 18, Weight: 10, NumItems: 2, Time: 0.000123, Feasible: true},
		{Instance: "a.txt", Method: "HillClimbing", Profit: 17, Weight: 9, NumItems: 2, Time: 1.5, Feasible: false},
	}
	require.NoError(t, ioformat.WriteCSVTo(&buf, records))

	out := buf.String()
	require.Contains(t, out, "Instance,Method,Profit,Weight,NumItems,Time,Feasible\n")
	require.Contains(t, out, "a.txt,Greedy_MAX_PROFIT,18,10,2,0.000123,Yes\n")
	require.Contains(t, out, "a.txt,HillClimbing,17,9,2,1.500000,No\n")
}

func TestWriteCSV_CreatesFile(t *testing.T) {
	path := t.TempDir() + "/out.csv"
	require.NoError(t, ioformat.WriteCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Instance,Method,Profit,Weight,NumItems,Time,Feasible\n", string(data))
}

func TestSolutionDump_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/i.txt"
	require.NoError(t, os.WriteFile(path, []byte("3 10 0\n10 9 8\n5 5 5\n"), 0o644))
	inst, err := instance.Load(path)
	require.NoError(t, err)

	sol := solution.New(inst)
	sol.AddItem(0)
	sol.AddItem(2)

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteSolutionDumpTo(&buf, sol))
	require.Equal(t, "18 10 2\n1 3\n", buf.String())

	dump, err := ioformat.ReadSolutionDump(&buf)
	require.NoError(t, err)
	require.Equal(t, 18, dump.TotalProfit)
	require.Equal(t, 10, dump.TotalWeight)
	require.Equal(t, []int{0, 2}, dump.Items)
}

func TestReadSolutionDump_TruncatedItemList(t *testing.T) {
	_, err := ioformat.ReadSolutionDump(bytes.NewBufferString("5 5 3\n1 2\n"))
	require.Error(t, err)
}

func TestReadCSVFrom_RoundTrip(t *testing.T) {
	records := []ioformat.Record{
		{Instance: "a.txt", Method: "Greedy_MAX_PROFIT", Profit: 18, Weight: 10, NumItems: 2, Time: 0.000123, Feasible: true},
		{Instance: "a.txt", Method: "HillClimbing", Profit: 17, Weight: 9, NumItems: 2, Time: 1.5, Feasible: false},
	}

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteCSVTo(&buf, records))

	got, err := ioformat.ReadCSVFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestReadCSV_CreatesAndReadsFile(t *testing.T) {
	path := t.TempDir() + "/out.csv"
	records := []ioformat.Record{
		{Instance: "b.txt", Method: "VND", Profit: 5, Weight: 3, NumItems: 1, Time: 0.5, Feasible: true},
	}
	require.NoError(t, ioformat.WriteCSV(path, records))

	got, err := ioformat.ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestReadCSVFrom_RejectsBadHeader(t *testing.T) {
	_, err := ioformat.ReadCSVFrom(bytes.NewBufferString("Wrong,Header\n"))
	require.Error(t, err)
}

func TestReadCSVFrom_RejectsMalformedRow(t *testing.T) {
	body := "Instance,Method,Profit,Weight,NumItems,Time,Feasible\na.txt,Greedy,notanumber,1,1,0.0,Yes\n"
	_, err := ioformat.ReadCSVFrom(bytes.NewBufferString(body))
	require.Error(t, err)
}
