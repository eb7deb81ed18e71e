/*
Package ports defines the driven ports (interfaces) for the countdown engine.

These interfaces decouple the state machine from external implementations, allowing
the engine to work with various storage backends, presentation surfaces and time sources.

# Key Interfaces

  - DateStore: Persists the single target date (memory, file or Redis).
  - Presenter: Renders each state's view (terminal, HTTP snapshot, tests).
  - Clock / Scheduler: Time source and cancellable one-shot timers.
  - Engine: What transport adapters need from a running machine.
*/
package ports
