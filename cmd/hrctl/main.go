// hrctl is a small command-line companion for the hr-records API.
//
// Usage:
//
//	hrctl login -u <username> -p <password>    prints a bearer token
//	hrctl list                                 lists all employees
//	hrctl get -id <id>                         shows one employee
//	hrctl payroll                              shows the caller's payroll view
//
// The server address comes from -server or the HRCTL_SERVER environment
// variable; authenticated commands read the token from -token or HRCTL_TOKEN.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dquintero/hr-records/internal/logger"
)

const defaultServer = "http://localhost:3000"

func main() {
	log := logger.NewLogger("hrctl")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, os.Args[2:])
	case "list":
		err = runList(ctx, os.Args[2:])
	case "get":
		err = runGet(ctx, os.Args[2:])
	case "payroll":
		err = runPayroll(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: hrctl <login|list|get|payroll> [flags]")
}

// commonFlags registers the flags shared by every subcommand and returns
// pointers to their values.
func commonFlags(fs *flag.FlagSet) (server, token *string) {
	server = fs.String("server", envOr("HRCTL_SERVER", defaultServer), "base URL of the hr-records server")
	token = fs.String("token", os.Getenv("HRCTL_TOKEN"), "bearer token for authenticated commands")
	return server, token
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	server, _ := commonFlags(fs)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	response, err := newAPIClient(*server, "", 0).Login(ctx, *username, *password)
	if err != nil {
		return err
	}

	if response.User != nil {
		fmt.Printf("logged in as %s\n", response.User.Username)
	}
	fmt.Printf("export HRCTL_TOKEN=%s\n", response.Token)
	return nil
}

func runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	server, token := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	employees, err := newAPIClient(*server, *token, 0).ListEmployees(ctx)
	if err != nil {
		return err
	}

	for _, e := range employees {
		username := "-"
		if e.Username != nil {
			username = *e.Username
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n",
			e.EmployeeID, e.Name, e.Position, e.Department, username)
	}
	return nil
}

func runGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	server, token := commonFlags(fs)
	employeeID := fs.Int64("id", 0, "employee id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	employee, err := newAPIClient(*server, *token, 0).GetEmployee(ctx, *employeeID)
	if err != nil {
		return err
	}

	fmt.Printf("id:         %d\n", employee.EmployeeID)
	fmt.Printf("name:       %s\n", employee.Name)
	fmt.Printf("hire date:  %s\n", employee.HireDate.Format("2006-01-02"))
	fmt.Printf("position:   %s\n", employee.Position)
	fmt.Printf("department: %s\n", employee.Department)
	if employee.Username != nil {
		fmt.Printf("account:    %s\n", *employee.Username)
	}
	return nil
}

func runPayroll(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payroll", flag.ExitOnError)
	server, token := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	payroll, err := newAPIClient(*server, *token, 0).Payroll(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", payroll.Name, payroll.Position)
	fmt.Printf("hours:  %d worked of %d estimated\n", payroll.WorkedHours, payroll.EstimatedHours)
	fmt.Printf("gross:  %.2f\n", payroll.GrossSalary)
	fmt.Printf("net:    %.2f\n", payroll.NetSalary)
	return nil
}
