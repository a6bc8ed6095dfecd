package aurornis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResult_IsSuccessful(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		returnCode int
		want       bool
	}{
		{"zero", 0, true},
		{"one", 1, false},
		{"high", 255, false},
		{"signal", -9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := NewResult("true", tt.returnCode, "", "", 0)
			assert.Equal(t, tt.want, res.IsSuccessful())
			assert.Equal(t, !tt.want, res.Failed())
		})
	}
}

func TestResult_Accessors(t *testing.T) {
	t.Parallel()

	res := NewResult("echo ok", 0, "ok\n", "warn\n", 1500*time.Microsecond+300*time.Nanosecond)

	assert.Equal(t, "echo ok", res.Command())
	assert.Equal(t, 0, res.ReturnCode())
	assert.Equal(t, "ok\n", res.Stdout())
	assert.Equal(t, "warn\n", res.Stderr())
	assert.Equal(t, 1500*time.Microsecond+300*time.Nanosecond, res.ExecutionTime())
	assert.Equal(t, int64(1500), res.ExecTimeMicroseconds())
	assert.Equal(t, int64(1), res.ExecTimeMilliseconds())
	assert.InDelta(t, 0.0015003, res.ExecutionTime().Seconds(), 1e-9)
}

func TestResult_Equal(t *testing.T) {
	t.Parallel()

	base := NewResult("echo ok", 0, "ok\n", "", time.Second)

	tests := []struct {
		name  string
		other *Result
		want  bool
	}{
		{"identical", NewResult("echo ok", 0, "ok\n", "", time.Second), true},
		{"execution time ignored", NewResult("echo ok", 0, "ok\n", "", time.Millisecond), true},
		{"different command", NewResult("echo ko", 0, "ok\n", "", time.Second), false},
		{"different return code", NewResult("echo ok", 1, "ok\n", "", time.Second), false},
		{"different stdout", NewResult("echo ok", 0, "ok", "", time.Second), false},
		{"different stderr", NewResult("echo ok", 0, "ok\n", "x", time.Second), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}

	var nilResult *Result
	assert.True(t, nilResult.Equal(nil))
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	res := NewResult("mkdir -p /tmp/aurornis", 0, "", "", time.Second)
	assert.Equal(t, `<CommandResult command="mkdir -p /tmp/aurornis" return_code=0 stdout="" stderr="">`, res.String())

	res = NewResult("touch /x", 1, "", "touch: cannot touch '/x'\n", time.Second)
	assert.Equal(t, `<CommandResult command="touch /x" return_code=1 stdout="" stderr="touch: cannot touch '/x'\n">`, res.String())

	res = NewResult("echo", 0, "say \"hi\"\nbye\n", "", time.Second)
	assert.Equal(t, `<CommandResult command="echo" return_code=0 stdout="say \"hi\"\nbye\n" stderr="">`, res.String())
}
