package aurornis_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ruffel/aurornis"
	"github.com/ruffel/aurornis/providers/local"
	"github.com/ruffel/aurornis/providers/mock"
)

func Example() {
	res, err := local.Run(context.Background(), []string{"echo", "ok"})
	if err != nil {
		panic(err)
	}

	fmt.Println(res.IsSuccessful())
	fmt.Print(res.Stdout())
	// Output:
	// true
	// ok
}

func ExampleExecutor_Run_mock() {
	p := mock.New()
	p.On("TargetOS").Return(aurornis.OSLinux)
	p.OnArgv("mytool", "--check").Return(mock.Output(1, "\x1b[31mFAIL\x1b[0m\r\n", ""), nil)

	exec := aurornis.NewExecutor(p)

	cmd := aurornis.Cmd("mytool").
		Arg("--check").
		RemoveColors().
		NormalizeCarriageReturn().
		Build()

	res, err := exec.Run(context.Background(), cmd)
	if err != nil {
		panic(err)
	}

	fmt.Println(res)
	// Output: <CommandResult command="mytool --check" return_code=1 stdout="FAIL\n" stderr="">
}

func ExampleSpawnError() {
	_, err := local.Run(context.Background(), []string{"aurornis-no-such-binary"})

	var spawnErr *aurornis.SpawnError
	fmt.Println(errors.As(err, &spawnErr))
	// Output: true
}

func ExampleBuildEnvironment() {
	host := aurornis.MapLookup(map[string]string{
		"PATH": "/usr/bin",
		"HOME": "/home/me",
	})

	cmd := aurornis.NewCommand([]string{"env"}, aurornis.WithRemoveColors(), aurornis.WithEnvVar("TZ", "UTC"))

	for _, kv := range aurornis.EnvList(aurornis.BuildEnvironment(host, aurornis.OSLinux, cmd)) {
		fmt.Println(kv)
	}
	// Output:
	// LANG=C
	// NO_COLOR=1
	// PATH=/usr/bin
	// TZ=UTC
}
