package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Onebeld/linkstore/internal/config"
	"github.com/Onebeld/linkstore/internal/models"
	"github.com/Onebeld/linkstore/internal/repository"
	"github.com/Onebeld/linkstore/internal/service"
)

const usage = "usage: linkstore [-d dsn] add|list|list-all|exists|clear|delete ..."

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	_ = godotenv.Load()

	cfg, err := config.ParseFlags()
	if err != nil {
		sugar.Fatalw("Configuration error",
			"error", err.Error())
	}

	repo, err := repository.New(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("Failed to open link store",
			"dsn", cfg.DatabaseDSN,
			"error", err.Error())
	}
	defer repo.Close()

	links := service.NewLinkService(repo, logger)

	if err := run(context.Background(), links, flag.Args()); err != nil {
		sugar.Fatalw("Command failed",
			"error", err.Error())
	}
}

func run(ctx context.Context, links *service.LinkService, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch command := args[0]; command {
	case "add":
		userID, err := parseUserID(args[1:])
		if err != nil {
			return err
		}
		if len(args) != 3 {
			return errors.New("usage: linkstore add <user-id> <link>")
		}
		return links.SaveLink(ctx, userID, args[2])

	case "list":
		userID, err := parseUserID(args[1:])
		if err != nil {
			return err
		}
		records, err := links.UserLinks(ctx, userID)
		if err != nil {
			return err
		}
		printLinks(records)
		return nil

	case "list-all":
		records, err := links.AllLinks(ctx)
		if err != nil {
			return err
		}
		printLinks(records)
		return nil

	case "exists":
		userID, err := parseUserID(args[1:])
		if err != nil {
			return err
		}
		if len(args) != 3 {
			return errors.New("usage: linkstore exists <user-id> <link>")
		}
		exists, err := links.HasLink(ctx, userID, args[2])
		if err != nil {
			return err
		}
		fmt.Println(exists)
		return nil

	case "clear":
		userID, err := parseUserID(args[1:])
		if err != nil {
			return err
		}
		return links.ClearLinks(ctx, userID)

	case "delete":
		userID, err := parseUserID(args[1:])
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return errors.New("usage: linkstore delete <user-id> <link> [link ...]")
		}
		return links.DeleteLinks(ctx, userID, args[2:])

	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func parseUserID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing user id\n%s", usage)
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", args[0], err)
	}
	return userID, nil
}

func printLinks(records []models.Link) {
	for _, record := range records {
		fmt.Printf("%d\t%s\n", record.UserID, record.URL)
	}
}
