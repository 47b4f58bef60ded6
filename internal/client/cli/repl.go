package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/waqarulwahab/autoport/internal/client/api"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Activities(ctx context.Context) error
	List(ctx context.Context) error
	Find(ctx context.Context) error
	Show(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	ExportCSV(ctx context.Context) error
	Exports(ctx context.Context) error
	AddExport(ctx context.Context) error
	SetExportStatus(ctx context.Context) error
	DeleteExport(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	EmailPreferences(ctx context.Context) error
	SystemPreferences(ctx context.Context) error
	UploadImage(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the AutoPort CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - dashboard      — inventory statistics
//	  - activities     — recent activity feed
//	  - (l)ist         — list the inventory
//	  - find           — filter by model/country and status
//	  - show | add | edit | delete — single-record operations
//	  - csv            — write the inventory to a CSV file
//	  - exports | exportadd | exportstatus | exportdel — shipments
//	  - profile | profileedit | password — account
//	  - emailprefs | sysprefs | upload   — settings
//	  - logout | exit | quit
//
// Any errors returned by command handlers are reported here through
// printlnFn; the loop itself never stops on a handler error.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	run := func(fn func(context.Context) error) {
		if err := fn(ctx); err != nil {
			printlnFn("Error:", api.UserMessage(err))
		}
	}

	for {
		printlnFn(fmt.Sprintf("ap %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Inventory: (l)ist, find, show, add, edit, delete, csv, dashboard, activities")
				printlnFn("Exports:   exports, exportadd, exportstatus, exportdel")
				printlnFn("Account:   profile, profileedit, password, emailprefs, sysprefs, upload, logout")
				printlnFn("Other:     exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			run(a.Register)

		case "login":
			run(a.Login)

		case "logout":
			run(a.Logout)

		case "dashboard":
			run(a.Dashboard)

		case "activities":
			run(a.Activities)

		case "l", "list":
			run(a.List)

		case "find":
			run(a.Find)

		case "show":
			run(a.Show)

		case "add":
			run(a.Add)

		case "edit":
			run(a.Edit)

		case "delete":
			run(a.Delete)

		case "csv":
			run(a.ExportCSV)

		case "exports":
			run(a.Exports)

		case "exportadd":
			run(a.AddExport)

		case "exportstatus":
			run(a.SetExportStatus)

		case "exportdel":
			run(a.DeleteExport)

		case "profile":
			run(a.Profile)

		case "profileedit":
			run(a.EditProfile)

		case "password":
			run(a.ChangePassword)

		case "emailprefs":
			run(a.EmailPreferences)

		case "sysprefs":
			run(a.SystemPreferences)

		case "upload":
			run(a.UploadImage)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
