package inventory

// Well-known system utilities, always present in the inventory regardless
// of what the filesystem scan finds.

var linuxBuiltins = []Entry{
	{Name: "Firefox", ID: "Firefox", Exec: "firefox"},
	{Name: "Terminal", ID: "Terminal", Exec: "gnome-terminal"},
	{Name: "Files", ID: "Files", Exec: "nautilus"},
	{Name: "Text Editor", ID: "Text Editor", Exec: "gedit"},
	{Name: "Calculator", ID: "Calculator", Exec: "gnome-calculator"},
	{Name: "Settings", ID: "Settings", Exec: "gnome-control-center"},
}

var windowsBuiltins = []Entry{
	{Name: "Notepad", ID: "Notepad", Exec: "notepad.exe"},
	{Name: "Calculator", ID: "Calculator", Exec: "calc.exe"},
	{Name: "Paint", ID: "Paint", Exec: "mspaint.exe"},
	{Name: "Command Prompt", ID: "Command Prompt", Exec: "cmd.exe"},
	{Name: "PowerShell", ID: "PowerShell", Exec: "powershell.exe"},
	{Name: "File Explorer", ID: "File Explorer", Exec: "explorer.exe"},
	{Name: "Task Manager", ID: "Task Manager", Exec: "taskmgr.exe"},
	{Name: "Control Panel", ID: "Control Panel", Exec: "control.exe"},
	{Name: "System Configuration", ID: "System Configuration", Exec: "msconfig.exe"},
	{Name: "Registry Editor", ID: "Registry Editor", Exec: "regedit.exe"},
	{Name: "Windows Media Player", ID: "Windows Media Player", Exec: "wmplayer.exe"},
	{Name: "WordPad", ID: "WordPad", Exec: "write.exe"},
	{Name: "Snipping Tool", ID: "Snipping Tool", Exec: "snippingtool.exe"},
	{Name: "Sticky Notes", ID: "Sticky Notes", Exec: "stikynot.exe"},
}

// builtinEntries returns a fresh copy of the utility table for the
// platform so callers can never alias the package-level slices.
func builtinEntries(platform string) []Entry {
	var src []Entry
	if platform == "windows" {
		src = windowsBuiltins
	} else {
		src = linuxBuiltins
	}
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}
