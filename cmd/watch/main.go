package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pix_checkout/internal/adapter/client"
	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/config"
	"pix_checkout/internal/poller"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to watcher config yaml")
		orderID     = flag.String("order", "", "storefront order id (creates a charge when -value is set)")
		value       = flag.Float64("value", 0, "charge amount in BRL")
		paymentID   = flag.String("payment", "", "gateway payment id to watch (skips charge creation)")
		description = flag.String("description", "", "charge description")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	api := client.New(cfg.API.BaseURL)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target := *paymentID
	if target == "" {
		if *orderID == "" || *value <= 0 {
			log.Fatalf("either -payment or -order with -value is required")
		}
		intent, err := api.CreateQRCode(ctx, request.PixQRCodeRequest{
			OrderID:     *orderID,
			Value:       *value,
			Description: *description,
		})
		if err != nil {
			log.Fatalf("qr code generation failed: %v", err)
		}
		fmt.Printf("payment_id: %s\nexpires_at: %s\npix copia e cola:\n%s\n", intent.ID, intent.ExpiresAt.Format(time.RFC3339), intent.QRCode)
		target = intent.ID
	}

	session := poller.NewSession(target, api, poller.Options{
		Interval:    time.Duration(cfg.Poll.IntervalSeconds) * time.Second,
		MaxAttempts: cfg.Poll.MaxAttempts,
		OnSuccess: func() {
			fmt.Println("payment approved")
		},
	})

	log.Printf("watching payment_id=%s interval=%ds max_attempts=%d", target, cfg.Poll.IntervalSeconds, cfg.Poll.MaxAttempts)
	session.Start(ctx)
	session.Wait()

	phase := session.Phase()
	if phase == poller.PhaseStopped {
		// Budget ran out without a terminal state; one manual check before
		// giving up, mirroring the storefront's "verify payment" button.
		if st, err := session.CheckNow(ctx); err == nil {
			log.Printf("manual check classification=%s", st.Classification)
			phase = session.Phase()
		}
	}

	if st, ok := session.LastStatus(); ok {
		fmt.Printf("final phase: %s (status=%s detail=%s attempts=%d)\n", phase, st.RawStatus, st.StatusDetail, session.Attempts())
	} else {
		fmt.Printf("final phase: %s (no status fetched, attempts=%d)\n", phase, session.Attempts())
	}

	if phase != poller.PhaseApproved {
		os.Exit(1)
	}
}
