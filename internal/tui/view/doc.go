// Package view provides the storefront view components.
//
// Every component renders the props it is given to a string and publishes
// user intents on an [Emitter]. None of them reads or writes the store:
// the presenter decides what to render and when.
//
// # Components
//
//   - [Page]: the product gallery with the basket counter and error banner
//   - [Card]: a product card in gallery, preview or basket-row layout
//   - [Preview]: the product preview shown in the modal
//   - [Modal]: the overlay that hosts one [Component] at a time
//   - [Basket]: basket rows, running total and the checkout button
//   - [OrderForm]: delivery address and payment method
//   - [ContactsForm]: email and phone
//   - [Success]: order confirmation with the charged total
//
// # Keys
//
// Components resolve key presses through the mode-aware keymap in
// internal/tui/keymap. Each modal component reports its [keymap.Mode] so the
// modal and the help bar know which bindings apply.
package view
