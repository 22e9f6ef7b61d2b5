// Package runner embeds a Lua interpreter to host a model's predict
// routine, the Go-native analogue of the CPython-embedding runner a
// Python-backed model container uses: one persistent interpreter state,
// serialized behind a single lock, loaded once at startup from the model
// directory.
package runner

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"chassisml.io/coreservice/internal/inferenceserver/preprocess"
	"chassisml.io/coreservice/internal/inferenceserver/protowire"
)

const predictGlobal = "predict"

// ModelRunner hosts a loaded model chunk behind a single interpreter state.
// Every call to Predict/PredictBatch takes the same lock, mirroring the
// global-interpreter-lock discipline the original Python runner relies on:
// the interpreter itself is never safe for concurrent use.
type ModelRunner struct {
	mu sync.Mutex
	L  *lua.LState
}

// Load reads and executes the model chunk at scriptPath, leaving its
// top-level `predict` function registered as a global for later calls.
func Load(scriptPath string) (*ModelRunner, error) {
	L := lua.NewState()
	if err := L.DoFile(scriptPath); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading model chunk %s: %w", scriptPath, err)
	}
	if fn := L.GetGlobal(predictGlobal); fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("model chunk does not define a %s function", predictGlobal)
	}
	return &ModelRunner{L: L}, nil
}

// Close releases the interpreter state. Call once, at shutdown.
func (m *ModelRunner) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.L.Close()
}

// Result is the runner's decoded, Go-native view of whatever the model
// chunk returned, before it is formatted onto either wire.
type Result struct {
	Outputs     []*protowire.PredictionOutput
	Success     bool
	Error       string
	Drift       *protowire.Drift
	Explanation *protowire.Explanation
}

// Predict runs one input set through the model under the shared
// interpreter lock.
func (m *ModelRunner) Predict(inputs preprocess.ModelInput) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	argTable := inputsToLua(m.L, inputs)

	if err := m.L.CallByParam(lua.P{
		Fn:      m.L.GetGlobal(predictGlobal),
		NRet:    1,
		Protect: true,
	}, argTable); err != nil {
		return Result{}, fmt.Errorf("model predict call failed: %w", err)
	}

	ret := m.L.Get(-1)
	m.L.Pop(1)

	retTable, ok := ret.(*lua.LTable)
	if !ok {
		return Result{}, fmt.Errorf("model predict must return a table, got %s", ret.Type())
	}
	return resultFromLua(retTable)
}

// PredictBatch runs a batch of input sets through the model, one call per
// element, preserving request order. It is the legacy path's entry point;
// each element takes the interpreter lock separately, so a batch of N
// costs N sequential calls rather than one bulk call and calls from other
// requests may run between elements, matching the
// upstream note that batch-size bookkeeping belongs to the caller.
func (m *ModelRunner) PredictBatch(batch []preprocess.ModelInput) ([]Result, error) {
	results := make([]Result, len(batch))
	for i, in := range batch {
		r, err := m.Predict(in)
		if err != nil {
			return nil, fmt.Errorf("batch element %d: %w", i, err)
		}
		results[i] = r
	}
	return results, nil
}

func inputsToLua(L *lua.LState, inputs preprocess.ModelInput) *lua.LTable {
	t := L.NewTable()
	for k, v := range inputs {
		t.RawSetString(k, lua.LString(v))
	}
	return t
}
