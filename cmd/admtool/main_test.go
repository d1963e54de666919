package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sceneXML = `<?xml version="1.0" encoding="UTF-8"?>
<ebuCoreMain><coreMetadata><format><audioFormatExtended>
<audioProgramme audioProgrammeID="APR_1001" audioProgrammeName="Main">
  <audioContentIDRef>ACO_1001</audioContentIDRef>
</audioProgramme>
<audioContent audioContentID="ACO_1001" audioContentName="Music">
  <audioObjectIDRef>AO_1001</audioObjectIDRef>
</audioContent>
<audioObject audioObjectID="AO_1001" audioObjectName="Stereo">
  <audioPackFormatIDRef>AP_00010002</audioPackFormatIDRef>
</audioObject>
</audioFormatExtended></format></coreMetadata></ebuCoreMain>
`

type cliEnv struct {
	home       string
	configPath string
	scenePath  string
}

func setupCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)

	configPath := filepath.Join(base, "config.toml")
	content := "[parser]\ncommon_definitions = true\n\n[catalog]\npath = " +
		`"` + filepath.ToSlash(filepath.Join(base, "catalog.db")) + `"` + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	scenePath := filepath.Join(base, "scene.xml")
	if err := os.WriteFile(scenePath, []byte(sceneXML), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return &cliEnv{home: home, configPath: configPath, scenePath: scenePath}
}

func runCLI(t *testing.T, env *cliEnv, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	flags := []string{"--config", env.configPath, "--log-format", "json"}
	code := run(append(flags, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestValidate(t *testing.T) {
	env := setupCLIEnv(t)

	out, _, code := runCLI(t, env, "validate", env.scenePath)
	if code != 0 {
		t.Fatalf("validate exit code = %d", code)
	}
	requireContains(t, out, env.scenePath+" validates")
}

func TestValidateReportsLocatedError(t *testing.T) {
	env := setupCLIEnv(t)

	_, errOut, code := runCLI(t, env, "--common-definitions=false", "validate", env.scenePath)
	if code != 1 {
		t.Fatalf("validate exit code = %d, want 1", code)
	}
	requireContains(t, errOut, "[adm-dangling-reference]")
	requireContains(t, errOut, "AP_00010002")
	requireContains(t, errOut, env.scenePath+" fails to validate")
}

func TestInspect(t *testing.T) {
	env := setupCLIEnv(t)

	out, errOut, code := runCLI(t, env, "inspect", env.scenePath)
	if code != 0 {
		t.Fatalf("inspect exit code = %d: %s", code, errOut)
	}
	requireContains(t, out, "audioObject")
	requireContains(t, out, "AO_1001")
	requireContains(t, out, "Stereo")
	requireContains(t, out, "AC_00010002")
}

func TestConvertStructure(t *testing.T) {
	env := setupCLIEnv(t)
	target := filepath.Join(t.TempDir(), "out.xml")

	out, errOut, code := runCLI(t, env, "convert", env.scenePath, "-o", target, "--structure", "itu", "--defaults")
	if code != 0 {
		t.Fatalf("convert exit code = %d: %s", code, errOut)
	}
	requireContains(t, out, "Wrote "+target)

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)
	requireContains(t, text, "<ituADM")
	requireContains(t, text, `importance="10"`)
	if strings.Contains(text, `audioPackFormatID="AP_00010002"`) {
		t.Fatalf("common definitions written without opting in:\n%s", text)
	}

	out, _, code = runCLI(t, env, "validate", target)
	if code != 0 {
		t.Fatalf("converted file does not validate: %s", out)
	}
}

func TestConvertRejectsUnknownStructure(t *testing.T) {
	env := setupCLIEnv(t)

	_, errOut, code := runCLI(t, env, "convert", env.scenePath, "--structure", "dolby")
	if code != 1 {
		t.Fatalf("convert exit code = %d, want 1", code)
	}
	requireContains(t, errOut, "dolby")
}

func TestDumpJSON(t *testing.T) {
	env := setupCLIEnv(t)

	out, errOut, code := runCLI(t, env, "dump", env.scenePath, "--format", "json")
	if code != 0 {
		t.Fatalf("dump exit code = %d: %s", code, errOut)
	}
	var graph struct {
		Elements []struct {
			ID string `json:"id"`
		} `json:"elements"`
	}
	if err := json.Unmarshal([]byte(out), &graph); err != nil {
		t.Fatalf("decode dump: %v\n%s", err, out)
	}
	if len(graph.Elements) == 0 || graph.Elements[0].ID != "APR_1001" {
		t.Fatalf("unexpected dump: %+v", graph)
	}
}

func TestIndexAndFind(t *testing.T) {
	env := setupCLIEnv(t)

	out, errOut, code := runCLI(t, env, "index", env.scenePath)
	if code != 0 {
		t.Fatalf("index exit code = %d: %s", code, errOut)
	}
	requireContains(t, out, env.scenePath+":")

	out, errOut, code = runCLI(t, env, "find", "AO_1001")
	if code != 0 {
		t.Fatalf("find exit code = %d: %s", code, errOut)
	}
	requireContains(t, out, env.scenePath)
	requireContains(t, out, "Stereo")

	out, _, code = runCLI(t, env, "find", "AO_1fff")
	if code != 0 {
		t.Fatalf("find exit code = %d", code)
	}
	requireContains(t, out, "No indexed files contain AO_1FFF")

	_, _, code = runCLI(t, env, "find", "XX_1001")
	if code != 1 {
		t.Fatalf("find with bad id exit code = %d, want 1", code)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLIEnv(t)
	target := filepath.Join(t.TempDir(), "admtool", "config.toml")

	out, errOut, code := runCLI(t, env, "config", "init", "--path", target)
	if code != 0 {
		t.Fatalf("config init exit code = %d: %s", code, errOut)
	}
	requireContains(t, out, "Wrote sample configuration")

	_, errOut, code = runCLI(t, env, "config", "init", "--path", target)
	if code != 1 {
		t.Fatalf("second config init exit code = %d, want 1", code)
	}
	requireContains(t, errOut, "already exists")

	out, errOut, code = runCLI(t, env, "config", "show")
	if code != 0 {
		t.Fatalf("config show exit code = %d: %s", code, errOut)
	}
	requireContains(t, out, "# Config path: "+env.configPath)
	requireContains(t, out, "common_definitions = true")
}

func TestDebugLoggingCarriesRunID(t *testing.T) {
	env := setupCLIEnv(t)

	_, errOut, code := runCLI(t, env, "--log-level", "debug", "validate", env.scenePath)
	if code != 0 {
		t.Fatalf("validate exit code = %d", code)
	}
	requireContains(t, errOut, `"run_id"`)
	requireContains(t, errOut, `"component":"validate"`)
}
