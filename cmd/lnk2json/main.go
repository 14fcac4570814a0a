// Command lnk2json decodes Windows Shell Link (.lnk) files and prints
// the result as JSON.
package main

func main() {
	execute()
}
