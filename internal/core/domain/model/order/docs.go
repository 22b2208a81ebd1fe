// Package order provides domain entities and business logic for order
// management in the dispatch system. It implements the Order aggregate root
// with lifecycle management and driver assignment bookkeeping.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Status: The order lifecycle enumeration with its wire values
//   - Item: A line item with quantity and unit price
//
// Key business rules:
//   - Orders start in the pending status with the total computed once from items
//   - Assignment requires the pending status and records the driver and timestamp
//   - Status updates are accepted for any defined status value; transition
//     legality is deliberately not enforced (source-compatible behavior)
//   - The delivered status records the delivery timestamp; releasing the
//     assigned driver is coordinated by the application layer
package order
