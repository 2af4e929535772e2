package osascript

// AppleScript programs run with "osascript -e". All user supplied text
// arrives through argv; an empty item means the value was not provided.

const messageScript = `
on run argv
	set {dlgTitle, dlgText, dlgIcon, dlgButtons, dlgDefault, dlgCancel} to items 1 thru 6 of argv
	set AppleScript's text item delimiters to "||"
	set buttonNames to text items of dlgButtons
	set AppleScript's text item delimiters to ""
	if dlgIcon is "stop" then
		set iconKind to stop
	else if dlgIcon is "caution" then
		set iconKind to caution
	else
		set iconKind to note
	end if
	if dlgCancel is "" then
		set answer to display dialog dlgText with title dlgTitle buttons buttonNames default button dlgDefault with icon iconKind
	else
		set answer to display dialog dlgText with title dlgTitle buttons buttonNames default button dlgDefault cancel button dlgCancel with icon iconKind
	end if
	return button returned of answer
end run
`

const openScript = `
on run argv
	set {dlgTitle, startDir} to items 1 thru 2 of argv
	if startDir is "" then
		set picked to choose file with prompt dlgTitle
	else
		set picked to choose file with prompt dlgTitle default location (POSIX file startDir)
	end if
	return POSIX path of picked
end run
`

const openMultipleScript = `
on run argv
	set {dlgTitle, startDir} to items 1 thru 2 of argv
	if startDir is "" then
		set picked to choose file with prompt dlgTitle with multiple selections allowed
	else
		set picked to choose file with prompt dlgTitle default location (POSIX file startDir) with multiple selections allowed
	end if
	set paths to {}
	repeat with f in picked
		set end of paths to POSIX path of f
	end repeat
	set AppleScript's text item delimiters to linefeed
	set joined to paths as text
	set AppleScript's text item delimiters to ""
	return joined
end run
`

const saveScript = `
on run argv
	set {dlgTitle, startDir, startName} to items 1 thru 3 of argv
	if startDir is "" and startName is "" then
		set picked to choose file name with prompt dlgTitle
	else if startDir is "" then
		set picked to choose file name with prompt dlgTitle default name startName
	else if startName is "" then
		set picked to choose file name with prompt dlgTitle default location (POSIX file startDir)
	else
		set picked to choose file name with prompt dlgTitle default location (POSIX file startDir) default name startName
	end if
	return POSIX path of picked
end run
`

const folderScript = `
on run argv
	set {dlgTitle, startDir} to items 1 thru 2 of argv
	if startDir is "" then
		set picked to choose folder with prompt dlgTitle
	else
		set picked to choose folder with prompt dlgTitle default location (POSIX file startDir)
	end if
	return POSIX path of picked
end run
`

const textScript = `
on run argv
	set {dlgTitle, dlgText, startValue, masked} to items 1 thru 4 of argv
	if masked is "true" then
		set answer to display dialog dlgText with title dlgTitle default answer startValue with hidden answer
	else
		set answer to display dialog dlgText with title dlgTitle default answer startValue
	end if
	return text returned of answer
end run
`

const colorScript = `
on run argv
	set picked to choose color default color {(item 2 of argv) as integer, (item 3 of argv) as integer, (item 4 of argv) as integer}
	return ((item 1 of picked) as string) & "," & ((item 2 of picked) as string) & "," & ((item 3 of picked) as string)
end run
`

const notifyScript = `
on run argv
	display notification (item 2 of argv) with title (item 1 of argv)
end run
`
