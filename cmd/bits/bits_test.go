package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/signadot/bits-format/bits/bitio"
	"github.com/signadot/bits-format/bits/decode"
	"github.com/signadot/bits-format/bits/eval"
	"github.com/signadot/bits-format/bits/format"
	"github.com/signadot/bits-format/bits/hexbits"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `8A004A801A8002F478
620080001611562C8802118E34

C0015000016115A2E0802F182340
A0016C880162017C3686B18A3D4780
`

func TestTransmissionsFromReader(t *testing.T) {
	ts, err := transmissions(&MainConfig{}, strings.NewReader(sample), nil, false)
	require.NoError(t, err)
	require.Len(t, ts, 4)
	assert.Equal(t, "<stdin>:4", ts[2].Name)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, writeSums(buf, ts))
	assert.Equal(t, "16\n12\n23\n31\n", buf.String())
}

func TestTransmissionsFromFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.hex")
	b := filepath.Join(dir, "b.hex")
	require.NoError(t, os.WriteFile(a, []byte("C200B40A82\n04005AC33890\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("9C0141080250320F1802104A08"), 0644))

	ts, err := transmissions(&MainConfig{}, nil, []string{a, b}, false)
	require.NoError(t, err)
	require.Len(t, ts, 3)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, writeValues(buf, ts))
	assert.Equal(t, "3\n54\n1\n", buf.String())

	_, err = transmissions(&MainConfig{}, nil, []string{filepath.Join(dir, "missing")}, false)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTransmissionsFromArgs(t *testing.T) {
	ts, err := transmissions(&MainConfig{}, nil, []string{"D2FE28", "38006F45291200"}, true)
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, uint64(2021), ts[0].Root.Value)
	assert.Equal(t, decode.Span{Start: 0, End: 49}, ts[1].Pos[ts[1].Root])

	_, err = transmissions(&MainConfig{}, nil, nil, true)
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestTransmissionErrors(t *testing.T) {
	_, err := transmissions(&MainConfig{}, strings.NewReader("D2FE28\nD2F\n"), nil, false)
	require.ErrorIs(t, err, hexbits.ErrOddLength)
	assert.Contains(t, err.Error(), "<stdin>:2")

	_, err = transmissions(&MainConfig{}, strings.NewReader("D2FE"), nil, false)
	require.ErrorIs(t, err, bitio.ErrOutOfBits)

	_, err = transmissions(&MainConfig{Z: true}, nil, []string{"D2FE29"}, true)
	require.ErrorIs(t, err, decode.ErrTrailingData)

	_, err = transmissions(&MainConfig{MaxDepth: 2}, nil, []string{"8A004A801A8002F478"}, true)
	require.ErrorIs(t, err, decode.ErrMaxDepth)

	_, err = transmissions(&MainConfig{}, strings.NewReader("\n \n"), nil, false)
	require.ErrorIs(t, err, hexbits.ErrEmpty)

	readErr := errors.New("disk gone")
	_, err = transmissions(&MainConfig{}, iotest.ErrReader(readErr), nil, false)
	require.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "<stdin>")

	f := filepath.Join(t.TempDir(), "bad.hex")
	require.NoError(t, os.WriteFile(f, []byte("D2FE28\n\nD2FG28\n"), 0644))
	_, err = transmissions(&MainConfig{}, nil, []string{f}, false)
	require.ErrorIs(t, err, hexbits.ErrBadHex)
	assert.Contains(t, err.Error(), f+":3: ")
}

func TestWriteResults(t *testing.T) {
	ts, err := transmissions(&MainConfig{}, nil, []string{"9C0141080250320F1802104A08", "CE00C43D881120"}, true)
	require.NoError(t, err)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, writeResults(context.Background(), buf, ts))
	assert.Equal(t, "sum=20 value=1\nsum=11 value=9\n", buf.String())

	ts, err = transmissions(&MainConfig{}, nil, []string{"1600C408821060"}, true)
	require.NoError(t, err)
	err = writeResults(context.Background(), buf, ts)
	require.ErrorIs(t, err, eval.ErrMissingOperand)
	assert.Contains(t, err.Error(), "arg 0")
}

func TestWriteDumps(t *testing.T) {
	ts, err := transmissions(&MainConfig{}, nil, []string{"C200B40A82", "D2FE28"}, true)
	require.NoError(t, err)

	buf := bytes.NewBuffer(nil)
	cfg := &DumpConfig{MainConfig: &MainConfig{}, Values: true, Pos: true}
	require.NoError(t, writeDumps(cfg, buf, ts))
	assert.Equal(t, "sum v6 @[0,40) = 3\n  1 v6 @[18,29)\n  2 v2 @[29,40)\n---\n2021 v6 @[0,21)\n", buf.String())

	cfg = &DumpConfig{MainConfig: &MainConfig{}, J: true, Y: true}
	require.ErrorIs(t, writeDumps(cfg, buf, ts), cli.ErrUsage)

	buf.Reset()
	cfg = &DumpConfig{MainConfig: &MainConfig{}, Y: true}
	require.NoError(t, writeDumps(cfg, buf, ts[1:]))
	assert.Contains(t, buf.String(), "value: 2021")
}

func TestWriteExprs(t *testing.T) {
	ts, err := transmissions(&MainConfig{}, nil, []string{"9C0141080250320F1802104A08"}, true)
	require.NoError(t, err)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, writeExprs(buf, ts, false))
	assert.Equal(t, "((1 + 3) == (2 * 2) ? 1 : 0)\n", buf.String())

	buf.Reset()
	require.NoError(t, writeExprs(buf, ts, true))
	assert.Equal(t, "((1 + 3) == (2 * 2) ? 1 : 0) = 1\n", buf.String())
}

func TestWriteGets(t *testing.T) {
	ts, err := transmissions(&MainConfig{}, nil, []string{"9C0141080250320F1802104A08"}, true)
	require.NoError(t, err)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, writeGets(&MainConfig{}, buf, ts, []int{1}))
	assert.Equal(t, "product v6 @[62,102) = 4\n  2 v0 @[80,91)\n  2 v2 @[91,102)\n", buf.String())

	require.Error(t, writeGets(&MainConfig{}, buf, ts, []int{2}))
}

func TestWriteDiff(t *testing.T) {
	ts, err := transmissions(&MainConfig{}, nil, []string{"C200B40A82", "04005AC33890"}, true)
	require.NoError(t, err)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, writeDiff(&DiffConfig{MainConfig: &MainConfig{}}, buf, ts[0], ts[0]))
	assert.Empty(t, buf.String())

	require.NoError(t, writeDiff(&DiffConfig{MainConfig: &MainConfig{}}, buf, ts[0], ts[1]))
	assert.Contains(t, buf.String(), "-sum v6\n")
	assert.Contains(t, buf.String(), "+product v0\n")
}

func TestWriteOps(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, writeOps(buf))
	out := buf.String()
	assert.Contains(t, out, "\t- 0 sum (0.. operands)\n")
	assert.Contains(t, out, "\t- 2 min (1.. operands)\n")
	assert.Contains(t, out, "\t- 7 eq (2 operands)\n")
	assert.NotContains(t, out, "literal")
}

func TestDumpOutFormat(t *testing.T) {
	f, err := (&DumpConfig{MainConfig: &MainConfig{}}).outFormat()
	require.NoError(t, err)
	assert.Equal(t, format.TreeFormat, f)

	f, err = (&DumpConfig{MainConfig: &MainConfig{}, Y: true}).outFormat()
	require.NoError(t, err)
	assert.Equal(t, format.YAMLFormat, f)

	j := format.JSONFormat
	_, err = (&DumpConfig{MainConfig: &MainConfig{}, Y: true, OutFormat: &j}).outFormat()
	require.ErrorIs(t, err, cli.ErrUsage)
}
