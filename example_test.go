package pushcast_test

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/pushcast"
)

func ExampleSendPush() {
	ok := pushcast.SendPush("Journal", "app-key", "master-secret", "Volume 12 is out")
	fmt.Println("sent:", ok)
}

func ExampleNew() {
	cfg := pushcast.DefaultConfig()
	cfg.LogFile = "/var/log/journal-push.txt"
	cfg.HTTPTimeout = 30 * time.Second

	client := pushcast.New(cfg)

	out := client.Send(context.Background(), "Journal", "app-key", "master-secret", pushcast.SilentAlertText)
	switch {
	case out.Succeeded():
		fmt.Println("sent")
	case out.TransportFailed():
		fmt.Println("could not reach the service:", out.Err)
	default:
		fmt.Println("rejected with status", out.StatusCode)
	}
}
