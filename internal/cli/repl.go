package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophpos/internal/session"
)

// printlnFn is an indirection used to facilitate testing.
var printlnFn = fmt.Println

type execIface interface {
	Register(ctx context.Context, s *session.Session) error
	Login(ctx context.Context, s *session.Session) error
	Logout(ctx context.Context, s *session.Session) error
	Products(ctx context.Context, s *session.Session) error
	AddToCart(ctx context.Context, s *session.Session, args []string) error
	ShowCart(ctx context.Context, s *session.Session) error
	ClearCart(ctx context.Context, s *session.Session) error
	Checkout(ctx context.Context, s *session.Session) error
	AddProduct(ctx context.Context, s *session.Session) error
	EditProduct(ctx context.Context, s *session.Session) error
	DeleteProduct(ctx context.Context, s *session.Session) error
	ResetProducts(ctx context.Context, s *session.Session) error
	Report(ctx context.Context, s *session.Session) error
}

const helpLoggedOut = `Commands:
  login            log in as an existing cashier
  register         create a new cashier account
  help             show this help
  exit, quit       leave the program`

const helpLoggedIn = `Commands:
  products         list products in stock (cashier menu)
  add <name> <qty> add a product to the cart
  cart             show the cart
  clear            empty the cart
  checkout         complete the sale and print the receipt
  addproduct       add a product to the catalog
  editproduct      edit a product
  deleteproduct    delete a product
  reset            delete every product
  report           sales report with CSV and PDF export
  logout           log out
  help             show this help
  exit, quit       leave the program`

// runREPL reads commands from reader until EOF or exit. Commands that need a
// logged-in cashier are refused while s is logged out. Handler errors are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, s *session.Session, statusFn func(*session.Session) string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pos %s> ", statusFn(s)))

		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var err error
		switch cmd {
		case "help":
			if s.LoggedIn {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "login", "register":
			if s.LoggedIn {
				printlnFn(fmt.Sprintf("Already logged in as %s, log out first.", s.Username))
				break
			}
			if cmd == "login" {
				err = a.Login(ctx, s)
			} else {
				err = a.Register(ctx, s)
			}
		case "logout", "products", "cashier", "add", "cart", "clear", "checkout",
			"addproduct", "editproduct", "deleteproduct", "reset", "report":
			if !s.LoggedIn {
				printlnFn("Please log in first.")
				break
			}
			err = dispatch(ctx, a, s, cmd, args)
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
		if readErr != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, s *session.Session, cmd string, args []string) error {
	switch cmd {
	case "logout":
		return a.Logout(ctx, s)
	case "products", "cashier":
		return a.Products(ctx, s)
	case "add":
		return a.AddToCart(ctx, s, args)
	case "cart":
		return a.ShowCart(ctx, s)
	case "clear":
		return a.ClearCart(ctx, s)
	case "checkout":
		return a.Checkout(ctx, s)
	case "addproduct":
		return a.AddProduct(ctx, s)
	case "editproduct":
		return a.EditProduct(ctx, s)
	case "deleteproduct":
		return a.DeleteProduct(ctx, s)
	case "reset":
		return a.ResetProducts(ctx, s)
	case "report":
		return a.Report(ctx, s)
	}
	return nil
}

func status(s *session.Session) string {
	if !s.LoggedIn {
		return "[" + string(s.Page) + "]"
	}
	return fmt.Sprintf("[%s | %s | cart %d]", s.Username, s.Menu, len(s.Cart))
}

// Root prints the banner and runs the REPL with a fresh session.
func (a *App) Root(ctx context.Context) {
	printlnFn(fmt.Sprintf("%s POS (type 'help' for commands)", a.config.StoreName))
	runREPL(ctx, a, session.New(), status, a.reader)
}
