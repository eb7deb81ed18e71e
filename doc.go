/*
Package countdown drives a countdown widget through four mutually exclusive
states using a finite-state machine fed by discrete inputs.

# States

	pending     waits for the bootstrap input, then reads the persisted date
	selectDate  shows the date entry and surfaces validation errors
	countdown   renders the remaining time once per second
	arrived     terminal; celebrates

An Input is {id, parameters}. When a handler returns a new state the machine
unloads the old one, loads the new one and replays the same input against it,
until some state handles the input without transitioning. Inputs a state has
no handler for are logged as warnings and dropped.

# Usage

	store := memory.NewStore()
	w := countdown.New(store, view)
	if err := w.Boot(ctx); err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	_ = w.SelectDate(ctx, "2027-01-01")
	fmt.Println(w.Snapshot().State) // countdown

Adapters in pkg/adapters expose a Widget over HTTP (chi) and MCP, and persist
the target date in memory, a file or Redis.
*/
package countdown
