package metrics

import (
	"context"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all economy events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CaseOpened,
		event.ItemUpgraded,
		event.ContractFused,
		event.ItemsSold,
		event.BalanceDeposited,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics.
// Undecodable payloads are counted as handler errors and otherwise ignored.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CaseOpened:
		var p event.CaseOpenedPayloadV1
		if p, err = event.DecodePayload[event.CaseOpenedPayloadV1](evt.Payload); err == nil {
			CasesOpened.WithLabelValues(p.CaseID, string(p.Tier)).Inc()
			MoneySpent.WithLabelValues(OperationCase).Add(float64(p.Price))
			ItemValueMinted.WithLabelValues(OperationCase).Add(float64(p.ItemPrice))
		}

	case event.ItemUpgraded:
		var p event.ItemUpgradedPayloadV1
		if p, err = event.DecodePayload[event.ItemUpgradedPayloadV1](evt.Payload); err == nil {
			result := ResultFailure
			if p.Success {
				result = ResultSuccess
				ItemValueMinted.WithLabelValues(OperationUpg).Add(float64(p.TargetPrice))
			}
			Upgrades.WithLabelValues(result).Inc()
			MoneySpent.WithLabelValues(OperationUpg).Add(float64(p.SourcePrice))
		}

	case event.ContractFused:
		var p event.ContractFusedPayloadV1
		if p, err = event.DecodePayload[event.ContractFusedPayloadV1](evt.Payload); err == nil {
			ContractsFused.WithLabelValues(string(p.Rarity)).Inc()
			MoneySpent.WithLabelValues(OperationFusion).Add(float64(p.InputValue))
			ItemValueMinted.WithLabelValues(OperationFusion).Add(float64(p.ResultPrice))
		}

	case event.ItemsSold:
		var p event.ItemsSoldPayloadV1
		if p, err = event.DecodePayload[event.ItemsSoldPayloadV1](evt.Payload); err == nil {
			ItemsSold.Add(float64(p.Count))
			MoneyEarned.Add(float64(p.Credited))
		}

	case event.BalanceDeposited:
		var p event.BalanceDepositedPayloadV1
		if p, err = event.DecodePayload[event.BalanceDepositedPayloadV1](evt.Payload); err == nil {
			MoneyDeposited.Add(float64(p.Amount))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
