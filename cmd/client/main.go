package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"stockroom/internal/adapter"
	"stockroom/internal/logger"
	"stockroom/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: stockroom-client [-a address] <command> [flags]

Commands:
  register        register a new user
  login           log in an existing user
  logout          clear the session
  add-product     create a product
  list-products   list products owned by an email
  add-raw         create a raw item, optionally linked to a product
  list-raws       list raw items owned by an email
  assign          link or unlink a raw item to a product
  add-purchase    record a purchase of a raw item
  list-purchases  list purchases made by an email
`

func main() {
	printBuildInfo()

	log := logger.NewLogger("stockroom-client")

	address := flag.String("a", "localhost:3000", "server address")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	server, err := adapter.NewHTTPServerAdapter(*address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()
	command := flag.Arg(0)
	args := flag.Args()[1:]

	result, err := run(ctx, server, command, args)
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}

	printResult(result)
}

func run(ctx context.Context, server adapter.ServerAdapter, command string, args []string) (any, error) {
	switch command {
	case "register":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "user email")
		password := fs.String("password", "", "password")
		password2 := fs.String("password2", "", "password confirmation")
		_ = fs.Parse(args)
		return server.Register(ctx, models.RegisterRequest{
			Email:     *email,
			Password:  *password,
			Password2: *password2,
		})

	case "login":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "user email")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		return server.Login(ctx, models.LoginRequest{Email: *email, Password: *password})

	case "logout":
		return server.Logout(ctx)

	case "add-product":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "owner email")
		itemID := fs.Int64("item-id", 0, "external item id")
		itemName := fs.String("item-name", "", "item name")
		imageURL := fs.String("image-url", "", "image URL")
		_ = fs.Parse(args)
		return server.AddProduct(ctx, models.ProductRequest{
			Email:    *email,
			ItemID:   *itemID,
			ItemName: *itemName,
			ImageURL: *imageURL,
		})

	case "list-products":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "owner email")
		_ = fs.Parse(args)
		return server.ListProducts(ctx, *email)

	case "add-raw":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "owner email")
		itemID := fs.Int64("item-id", 0, "external item id")
		itemName := fs.String("item-name", "", "item name")
		imageURL := fs.String("image-url", "", "image URL")
		productID := fs.Int64("product-id", 0, "linked product id, 0 for none")
		_ = fs.Parse(args)
		request := models.RawRequest{
			Email:    *email,
			ItemID:   *itemID,
			ItemName: *itemName,
			ImageURL: *imageURL,
		}
		if *productID != 0 {
			request.ProductID = models.Link(*productID)
		}
		return server.AddRaw(ctx, request)

	case "list-raws":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "owner email")
		_ = fs.Parse(args)
		return server.ListRaws(ctx, *email)

	case "assign":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		rawID := fs.Int64("raw-id", 0, "raw item id")
		productID := fs.Int64("product-id", 0, "product id to link, 0 to unlink")
		_ = fs.Parse(args)
		request := models.AssignProductRequest{RawID: *rawID}
		if *productID != 0 {
			request.ProductID = models.Link(*productID)
		}
		return server.AssignProduct(ctx, request)

	case "add-purchase":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "buyer email")
		rawID := fs.Int64("raw-id", 0, "raw item id")
		quantity := fs.Int64("quantity", 0, "purchased quantity")
		amount := fs.Float64("amount", 0, "purchase amount")
		when := fs.String("time", "", "purchase time")
		_ = fs.Parse(args)
		return server.AddPurchase(ctx, models.PurchaseRequest{
			Email:            *email,
			RawID:            *rawID,
			PurchaseQuantity: *quantity,
			PurchaseAmount:   *amount,
			PurchaseTime:     *when,
		})

	case "list-purchases":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		email := fs.String("email", "", "buyer email")
		_ = fs.Parse(args)
		return server.ListPurchases(ctx, *email)

	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

func printResult(result any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
