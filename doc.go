// Package dstar provides an incremental grid path planner of the D* Lite
// family.
//
// It exposes three main entry points:
//
//   - Planner: plan once, then cheaply re-plan after obstacles are revealed or
//     the agent moves, reusing the cost field computed so far.
//   - Navigator: drive an agent through a partially known world one cell at a
//     time, sensing obstacles and re-planning as it goes.
//   - PlanAll: run many independent planning requests on a worker pool.
//
// The search runs backward from the goal toward the start, so moving the
// agent only invalidates a small neighbourhood of the cost field. A Planner
// owns all of its state and is not safe for concurrent use; give every agent
// its own instance.
package dstar
