// Package order contains the ManufacturingOrder aggregate.
//
// A manufacturing order is a request to produce a quantity of a product.
// On confirmation it binds a bill of materials and instantiates one work
// order per routing operation; from then on the aggregate coordinates the
// order lifecycle and the lifecycles of its work orders, including the
// dependency guard that keeps routing steps in order.
//
// Both the order and its work orders move through explicit state machines
// (Status and WorkOrderStatus). Transition methods return a typed error
// when a move is not allowed, so callers never observe a half-applied
// transition.
package order
