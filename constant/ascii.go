package constant

// AsciiArtLogo is the application's ASCII art banner shown on the root help screen.
const AsciiArtLogo = `
                  __
   _________ _____/ /__  ____  ________
  / ___/ __ ` + "`" + `/ __  / _ \/ __ \/ ___/ _ \
 / /__/ /_/ / /_/ /  __/ / / / /__/  __/
 \___/\__,_/\__,_/\___/_/ /_/\___/\___/
`
