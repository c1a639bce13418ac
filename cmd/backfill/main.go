// Command backfill finds delivered orders without delivered_at and repairs them.
//
//	backfill                         # только показать
//	backfill -fix-all                # проставить даты всем найденным
//	backfill -order <id> [-date ...] # починить один заказ
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-orders/internal/repo"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"

	"github.com/joho/godotenv"
)

func main() {
	fixAll := flag.Bool("fix-all", false, "repair every delivered order missing delivered_at")
	orderID := flag.String("order", "", "repair a single order by id")
	date := flag.String("date", "", "delivery date for -order, defaults to now")
	flag.Parse()

	godotenv.Load()
	conf := config.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, logger, conf, *fixAll, *orderID, *date); err != nil {
		logger.Error("backfill failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, conf config.Config, fixAll bool, orderID, date string) error {
	if err := conf.Postgres.Validate(); err != nil {
		return fmt.Errorf("invalid postgres config: %w", err)
	}

	db, err := postgres.New(ctx, conf.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := service.NewOrderService(logger, service.Deps{
		Repo:      repo.NewPostgresRepo(db),
		TxManager: trm.NewManager(db),
	})

	switch {
	case orderID != "":
		deliveredAt, err := utils.ParseOptionalTime(date)
		if err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
		order, err := svc.FixDeliveryDate(ctx, orderID, deliveredAt)
		if err != nil {
			return err
		}
		fmt.Printf("fixed %s: delivered_at=%s\n", order.ID, order.DeliveredAt.Format(time.RFC3339))
		return nil

	case fixAll:
		report, err := svc.FixAllDeliveryDates(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("fixed %d of %d orders\n", report.Fixed, report.Total)
		return nil
	}

	orders, err := svc.FindMissingDeliveryDates(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tUPDATED_AT\tCREATED_AT")
	for _, o := range orders {
		updated := "-"
		if o.UpdatedAt != nil {
			updated = o.UpdatedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.OrderNumber, updated, o.CreatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "\n%d orders without delivered_at\n", len(orders))
	return w.Flush()
}
