// Package mock provides a controllable implementation of aurornis.Provider
// for testing purposes.
//
// It allows defining expectations for command execution, enabling
// deterministic unit tests for code that builds upon an aurornis.Executor
// without spawning real processes.
//
// Usage:
//
//	m := mock.New()
//	m.On("TargetOS").Return(aurornis.OSLinux)
//	m.OnArgv("git", "status").Return(mock.Output(0, "On branch main\n", ""), nil)
//	exec := aurornis.NewExecutor(m)
package mock
