// Command zkpauth-client registers and authenticates users against a
// zkpauth-server instance.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"

	"zkpauth"
	"zkpauth/internal/cliutil"
	"zkpauth/internal/clientapi"
	"zkpauth/internal/rpc"
)

const maxTries = 3

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "register":
		runRegister(os.Args[2:])
	case "login":
		runLogin(os.Args[2:])
	case "--help", "-h", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "zkpauth-client: unknown command %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: zkpauth-client <register|login> [flags]")
	fmt.Println("  -u, --username USERNAME")
	fmt.Println("  -p, --password PASSWORD   (also read from $PASSWORD)")
	fmt.Println("  -s, --server URL          (default http://127.0.0.1:3000)")
}

type commandFlags struct {
	username string
	password string
	server   string
}

func parseCommandFlags(name string, args []string) commandFlags {
	flags := flag.NewFlagSet(name, flag.ExitOnError)
	var f commandFlags
	flags.StringVar(&f.username, "username", "", "username")
	flags.StringVar(&f.username, "u", "", "shorthand for --username")
	flags.StringVar(&f.password, "password", os.Getenv("PASSWORD"), "password")
	flags.StringVar(&f.password, "p", os.Getenv("PASSWORD"), "shorthand for --password")
	flags.StringVar(&f.server, "server", "http://127.0.0.1:3000", "server URL")
	flags.StringVar(&f.server, "s", "http://127.0.0.1:3000", "shorthand for --server")
	flags.Parse(args)

	if err := validateServerURL(f.server); err != nil {
		fmt.Fprintf(os.Stderr, "zkpauth-client: invalid --server value %q: %v\n", f.server, err)
		os.Exit(2)
	}

	return f
}

// validateServerURL checks that the --server flag is at least a
// structurally valid, absolute URL, mirroring the original CLI's
// test_validity check at flag-parse time rather than letting a malformed
// value surface later as an opaque transport error.
func validateServerURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL with a scheme and host")
	}
	return nil
}

func runRegister(args []string) {
	f := parseCommandFlags("register", args)
	client := clientapi.New(f.server)

	fmt.Println("=============== ZKP Auth (Registration) ===============")
	username, password := f.username, f.password

	for attempt := 0; attempt < maxTries; attempt++ {
		var err error
		if attempt > 0 {
			username, err = cliutil.MaybeInput("", "Enter a User ID:")
			if err != nil {
				fatal(err)
			}
			password, err = cliutil.MaybePassword("", "Select a Password:")
			if err != nil {
				fatal(err)
			}
		} else {
			username, err = cliutil.MaybeInput(username, "Enter a User ID:")
			if err != nil {
				fatal(err)
			}
			password, err = cliutil.MaybePassword(password, "Select a Password:")
			if err != nil {
				fatal(err)
			}
		}

		x := zkpauth.PasswordToInt(password)
		y1, y2 := zkpauth.Commit(x)

		err = client.Register(rpc.RegisterRequest{
			User: username,
			Y1:   zkpauth.SerializeBigInt(y1),
			Y2:   zkpauth.SerializeBigInt(y2),
		})
		if err == nil {
			fmt.Println("[i] Successfully registered user")
			return
		}

		var rpcErr *rpc.Error
		if errors.As(err, &rpcErr) && rpcErr.Code == rpc.CodeAlreadyExists {
			fmt.Fprintf(os.Stderr, "[!] user %q already exists\n", username)
		} else {
			fmt.Fprintf(os.Stderr, "[!] failed to register user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("---------------------- [ %d / %d ] ----------------------\n", attempt+1, maxTries)
	}

	fmt.Fprintf(os.Stderr, "[!] failed to register user after %d tries\n", maxTries)
	os.Exit(1)
}

func runLogin(args []string) {
	f := parseCommandFlags("login", args)
	client := clientapi.New(f.server)

	fmt.Println("=================== ZKP Auth (Login) ==================")
	username, password := f.username, f.password

	for attempt := 0; attempt < maxTries; attempt++ {
		if ok := tryLogin(client, &username, &password, attempt); ok {
			return
		}
		fmt.Printf("---------------------- [ %d / %d ] ----------------------\n", attempt+1, maxTries)
	}

	fmt.Fprintf(os.Stderr, "[!] failed to authenticate after %d tries\n", maxTries)
	os.Exit(1)
}

// tryLogin runs one attempt of the challenge/response exchange. It returns
// true on success and false on a server-reported error worth retrying; any
// other error exits the process.
func tryLogin(client *clientapi.Client, username, password *string, attempt int) bool {
	var err error
	if attempt > 0 {
		*username, err = cliutil.MaybeInput("", "Enter Your User ID:")
	} else {
		*username, err = cliutil.MaybeInput(*username, "Enter Your User ID:")
	}
	if err != nil {
		fatal(err)
	}
	if attempt > 0 {
		*password, err = cliutil.MaybePassword("", "Enter Your Password:")
	} else {
		*password, err = cliutil.MaybePassword(*password, "Enter Your Password:")
	}
	if err != nil {
		fatal(err)
	}

	x := zkpauth.PasswordToInt(*password)
	k := zkpauth.RandomBigInt(zkpauth.Q)
	r1, r2 := zkpauth.Commit(k)

	challenge, err := client.CreateAuthenticationChallenge(rpc.AuthenticationChallengeRequest{
		User: *username,
		R1:   zkpauth.SerializeBigInt(r1),
		R2:   zkpauth.SerializeBigInt(r2),
	})
	if err != nil {
		var rpcErr *rpc.Error
		if errors.As(err, &rpcErr) && rpcErr.Code == rpc.CodeNotFound {
			fmt.Fprintf(os.Stderr, "[!] user %q does not exist\n", *username)
		} else {
			fmt.Fprintf(os.Stderr, "[!] failed to create authentication challenge: %v\n", err)
			os.Exit(1)
		}
		return false
	}

	c := zkpauth.DeserializeBigInt(challenge.C)
	s := zkpauth.Respond(k, c, x)

	answer, err := client.VerifyAuthentication(rpc.AuthenticationAnswerRequest{
		AuthID: challenge.AuthID,
		S:      zkpauth.SerializeBigInt(s),
	})
	if err != nil {
		var rpcErr *rpc.Error
		switch {
		case errors.As(err, &rpcErr) && rpcErr.Code == rpc.CodeNotFound:
			fmt.Fprintf(os.Stderr, "[!] user %q does not have an authentication challenge\n", *username)
		case errors.As(err, &rpcErr) && rpcErr.Code == rpc.CodeUnauthenticated:
			fmt.Fprintln(os.Stderr, "[!] failed to authenticate, invalid credentials")
		default:
			fmt.Fprintf(os.Stderr, "[!] failed to verify authentication: %v\n", err)
			os.Exit(1)
		}
		return false
	}

	fmt.Printf("[i] Successfully authenticated user, session ID is: %q\n", answer.SessionID)
	return true
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "zkpauth-client: %v\n", err)
	os.Exit(1)
}
