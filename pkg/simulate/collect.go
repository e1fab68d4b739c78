package simulate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/msimtools/motorsport-session-manager-go/pkg/model"
)

// CollectSession prompts on w and reads driver name, track name and
// vehicle choice line by line from r. Lap times are left zeroed, the
// caller fills them in. Any integer is accepted as vehicle choice:
// values outside the menu keep their numeric identity and resolve to
// the Rally defaults downstream.
func CollectSession(r io.Reader, w io.Writer) (model.Session, error) {
	scanner := bufio.NewScanner(r)
	readLine := func(prompt string) (string, error) {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", io.ErrUnexpectedEOF
		}
		return scanner.Text(), nil
	}

	ret := model.Session{}
	var err error
	if ret.Driver, err = readLine("Enter driver name: "); err != nil {
		return model.Session{}, err
	}
	if ret.Track, err = readLine("Enter track name: "); err != nil {
		return model.Session{}, err
	}

	fmt.Fprint(w, "\nChoose a vehicle:\n")
	for _, vehicle := range model.VehicleTypes() {
		fmt.Fprintf(w, "%d. %s\n", int(vehicle), vehicle)
	}
	rawChoice, err := readLine("Choice: ")
	if err != nil {
		return model.Session{}, err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(rawChoice))
	if err != nil {
		return model.Session{}, fmt.Errorf("invalid vehicle choice %q: %w", rawChoice, err)
	}
	ret.Vehicle = model.VehicleType(choice)
	return ret, nil
}
