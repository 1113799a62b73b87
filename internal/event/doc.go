// Package event provides a pub-sub event bus for decoupled communication
// between the store, the views and the presenter in larek.
//
// Views publish intents without knowing who handles them; the store publishes
// change notifications without knowing who renders them. The presenter is the
// only component that subscribes to both sides.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Subscriptions
//
// A handler can subscribe by exact name ([Bus.Subscribe]), by regular
// expression ([Bus.SubscribePattern]) or to every event ([Bus.SubscribeAll]).
// Publish calls all matching handlers in registration order regardless of
// subscription kind. Handlers may publish further events; the list of
// handlers for an event is fixed when its dispatch starts.
//
// # Event Categories
//
// Store changes:
//   - products:changed, product:preview, basket:add-product,
//     basket:remove-product, basket:clear, order:clear, formErrors:change
//
// View intents:
//   - card:select, card:addtocart, card:deletefromcart, basket:open,
//     order:start, order:open, payment:choosed, order:submit,
//     contacts:submit, success:close
//   - order.<field>:change and contacts.<field>:change, matched with
//     [OrderFieldChange] and [ContactsFieldChange]
//
// Shell:
//   - modal:open, modal:close, products:loaded, products:load-failed,
//     order:success, order:failed
//
// # Basic Usage
//
//	bus := event.NewBus(event.WithLogger(logger))
//
//	bus.SubscribePattern(event.OrderFieldChange, func(e event.Event) {
//	    change := e.(event.FieldChangeEvent)
//	    store.SetOrderField(change.Field, change.Value)
//	})
//
//	bus.SubscribeAll(func(e event.Event) {
//	    logger.Debug("event", "name", e.EventType())
//	})
//
//	submit := bus.TriggerSignal(event.OrderSubmit)
//	submit()
//
// A panicking handler is recovered and logged; the remaining handlers still run.
package event
