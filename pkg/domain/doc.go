/*
Package domain contains the core domain models of the countdown state machine.

It defines the values exchanged between the engine, its states and the adapters.
This package is kept pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Input: An event record {ID, Parameters} consumed by the dispatch engine.
  - StateName: Identifies one of the mutually exclusive modes (pending, selectDate, countdown, arrived).
  - Parts: The day/hour/minute/second decomposition rendered by the countdown.
  - Snapshot: A read-only view of the machine for adapters (HTTP, MCP, CLI).
  - LifecycleHooks: Callbacks fired on load, unload, transition and unhandled inputs.
*/
package domain
