package lieutenant_test

import (
	"fmt"

	"github.com/Bloeckchengrafik/lieutenant"
	"github.com/Bloeckchengrafik/lieutenant/argument"
	"github.com/Bloeckchengrafik/lieutenant/command"
	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// server is the runtime context commands operate on.
type server struct {
	motd string
}

func Example() {
	give := command.OnCall(
		command.Literal("/give").Space().Uint32().Space().Str(),
		func(ext parser.Pair[uint32, string]) func(*server) string {
			return func(*server) string {
				return fmt.Sprintf("giving %d x %s", ext.A, ext.B)
			}
		})

	say := command.OnCall(
		command.Literal("/say").Space().Wildcard(),
		func(msg argument.Wildcard) func(*server) string {
			return func(s *server) string {
				return s.motd + ": " + msg.String()
			}
		})

	d := lieutenant.NewDispatcher[*server, string]()
	d.Register(give, say)
	if err := d.Build(); err != nil {
		panic(err)
	}

	srv := &server{motd: "announce"}
	out, _ := d.Dispatch(srv, "/give 32 minecraft:chicken")
	fmt.Println(out)
	out, _ = d.Dispatch(srv, "/say hello world")
	fmt.Println(out)

	// Output:
	// giving 32 x minecraft:chicken
	// announce: hello world
}

// Example_singleCommand shows a command used without a dispatcher.
func Example_singleCommand() {
	echo := command.OnCall(
		command.Literal("/echo").Space().Uint32(),
		func(n uint32) func(*server) uint32 {
			return func(*server) uint32 { return n * 2 }
		})

	out, err := echo.Call(&server{}, "/echo 21")
	fmt.Println(out, err)
	// Output:
	// 42 <nil>
}
