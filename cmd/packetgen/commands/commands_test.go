package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/pktlayout/internal/config"
	"github.com/alexhholmes/pktlayout/internal/parser"
	"github.com/alexhholmes/pktlayout/internal/testutil/testlog"
)

const greYAML = `
packets:
  - name: Gre
    fields:
      - {name: checksum_present, type: u1}
      - {name: routing_present, type: u1}
      - {name: flags, type: u11be}
      - {name: version, type: u3}
      - {name: protocol_type, type: u16be}
      - name: checksum
        type: "[]u16be"
        attrs: ['length = "gre_checksum_length(checksum_present, routing_present)"']
      - {name: payload, type: "[]u8", attrs: [payload]}
`

const hostYAML = `
packets:
  - name: Native
    fields:
      - {name: word, type: u32he}
`

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	testlog.Start(t)
	schema := writeTemp(t, "gre.yaml", greYAML)

	out, err := run(t, "check", schema)
	require.NoError(t, err)
	assert.Contains(t, out, schema+": ok (1 packets)")
	assert.Contains(t, out, "Gre needs function gre_checksum_length")
}

func TestCheck_CompileError(t *testing.T) {
	testlog.Start(t)
	schema := writeTemp(t, "bad.yaml", `
packets:
  - name: Bad
    fields:
      - {name: a, type: "[]u8", attrs: [payload]}
      - {name: b, type: "[]u8", attrs: [payload]}
`)

	_, err := run(t, "check", schema)
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrMultiplePayload)
}

func TestCheck_HostOrderFromConfig(t *testing.T) {
	testlog.Start(t)
	schema := writeTemp(t, "native.yaml", hostYAML)

	_, err := run(t, "check", schema)
	assert.ErrorIs(t, err, parser.ErrHostOrderUnset)

	cfg := writeTemp(t, config.DefaultFile, `host_order = "little"`)
	out, err := run(t, "--config", cfg, "check", schema)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (1 packets)")

	t.Setenv("PKTLAYOUT_HOST_ORDER", "big")
	_, err = run(t, "check", schema)
	require.NoError(t, err)
}

func TestGen(t *testing.T) {
	testlog.Start(t)
	schema := writeTemp(t, "gre.yaml", greYAML)
	output := filepath.Join(filepath.Dir(schema), "wire", "gre.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(output), 0o755))

	out, err := run(t, "gen", schema, "-o", output, "-p", "wire")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+output)

	src, err := os.ReadFile(output)
	require.NoError(t, err)
	code := string(src)
	assert.Contains(t, code, "package wire")
	assert.Contains(t, code, "func NewGreView(buf []byte) *GreView {")
	assert.Contains(t, code, "func (p *MutableGreView) SetChecksum(vals []uint16) {")
	assert.Contains(t, code, "gre_checksum_length(")
}

func TestGen_DefaultOutputAndPackage(t *testing.T) {
	testlog.Start(t)
	schema := writeTemp(t, "gre.yaml", greYAML)
	cfg := writeTemp(t, config.DefaultFile, `
package = "tunnels"

[naming]
view = "%sReader"
mutable = "%sWriter"
`)

	_, err := run(t, "--config", cfg, "gen", schema)
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(filepath.Dir(schema), "gre_views.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package tunnels")
	assert.Contains(t, string(src), "type GreReader struct")
	assert.Contains(t, string(src), "type GreWriter struct")
}

func TestGen_Stdout(t *testing.T) {
	testlog.Start(t)
	schema := writeTemp(t, "gre.yaml", greYAML)

	out, err := run(t, "gen", schema, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "// Code generated by packetgen. DO NOT EDIT.")
	assert.Contains(t, out, "package packets")
}

func TestInspect(t *testing.T) {
	testlog.Start(t)
	schema := writeTemp(t, "gre.yaml", greYAML)

	out, err := run(t, "inspect", schema)
	require.NoError(t, err)
	assert.Contains(t, out, "Gre (GreView, MutableGreView)")
	assert.Contains(t, out, "minimum size: 4 bytes (32 fixed bits)")
	assert.Contains(t, out, "payload:      payload from 4 + (gre_checksum_length(checksum_present, routing_present)), end of buffer")
	assert.Contains(t, out, "external:     function gre_checksum_length")
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "checksum_present")
	assert.Contains(t, out, "2-byte elements")

	_, err = run(t, "inspect", schema, "--packet", "Udp")
	assert.Error(t, err)
}

func TestInspect_Nested(t *testing.T) {
	testlog.Start(t)
	schema := writeTemp(t, "outer.yaml", `
packets:
  - name: Outer
    fields:
      - {name: count, type: u8}
      - {name: options, type: "[]Option"}
  - name: Option
    fields:
      - {name: kind, type: u8}
      - {name: size, type: u16be}
      - {name: data, type: "[]u8", attrs: ['length = "size"']}
`)

	out, err := run(t, "inspect", schema, "--packet", "Outer")
	require.NoError(t, err)
	assert.Contains(t, out, "packets of Option, at least 3 bytes each")
	assert.NotContains(t, out, "OptionView")
}

func TestInitConfig(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), config.DefaultFile)

	out, err := run(t, "--config", path, "init-config")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = run(t, "--config", path, "init-config")
	assert.ErrorIs(t, err, config.ErrExists)

	_, err = run(t, "--config", path, "init-config", "--force")
	assert.NoError(t, err)
}

func TestJSONSchema(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "jsonschema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$schema": "https://json-schema.org/draft/2020-12/schema"`)
	assert.Contains(t, out, `"packets"`)
	assert.Contains(t, out, `"attrs"`)

	path := filepath.Join(t.TempDir(), "schema.json")
	_, err = run(t, "jsonschema", "-o", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
