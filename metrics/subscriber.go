package metrics

import (
	"context"

	"fozi/events"
)

// RegisterEventSubscribers wires the metrics counters to the event bus
func RegisterEventSubscribers(bus *events.Bus) {
	bus.Subscribe(events.EventTypeBalanceChange, func(_ context.Context, event events.Event) {
		change, ok := event.(events.BalanceChangeEvent)
		if !ok {
			return
		}

		txType := string(change.TransactionType)
		balanceChangesTotal.WithLabelValues(txType).Inc()

		amount := change.ChangeAmount
		if amount < 0 {
			amount = -amount
		}
		ballsMovedTotal.WithLabelValues(txType).Add(float64(amount))
	})

	bus.Subscribe(events.EventTypeAccountCreated, func(_ context.Context, event events.Event) {
		if _, ok := event.(events.AccountCreatedEvent); ok {
			accountsCreatedTotal.Inc()
		}
	})
}
