// Package lua embeds a sandboxed gopher-lua runtime for user scripts.
//
// # State
//
// State wraps an LState that only has the base, table, string and math
// libraries opened. The loaders (dofile, loadfile, load, loadstring) are
// removed and print is redirected to a caller supplied sink:
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(50 * time.Millisecond))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
// Every call runs under a context deadline, so a runaway script is aborted
// instead of hanging the UI.
//
// # Color scripts
//
// ColorScript implements annotation.ColorPolicy by calling a global Lua
// function for every address that has no explicit tag:
//
//	function color(addr, byte, cursor)
//	    if byte == nil then return 0 end
//	    if not isprint(byte) then return 1 end
//	    return 0
//	end
//
// byte is nil when the data source has no byte at addr. The function must
// return a tag in 0..9. Errors and non-numeric results yield tag 0; the first
// failure is logged and later ones are only counted.
package lua
