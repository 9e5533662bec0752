package dummy

import (
	"log"

	"periph.io/x/conn/v3/physic"

	"github.com/mtraver/tempseries/sensor"
)

// Dummy returns its configured temperatures in order, starting over once
// they run out. With none configured it always reads 18°C.
type Dummy struct {
	Temps []physic.Temperature
	next  int
}

func init() {
	sensor.Register("dummy", &Dummy{
		Temps: []physic.Temperature{
			18*physic.Celsius + physic.ZeroCelsius,
			19*physic.Celsius + physic.ZeroCelsius,
			17*physic.Celsius + physic.ZeroCelsius,
		},
	})
}

func (d *Dummy) Init() error {
	log.Printf("DUMMY SENSOR INIT")
	d.next = 0
	return nil
}

func (d *Dummy) Sense() (physic.Temperature, error) {
	log.Printf("DUMMY SENSOR SENSE")
	if len(d.Temps) == 0 {
		return 18*physic.Celsius + physic.ZeroCelsius, nil
	}

	t := d.Temps[d.next%len(d.Temps)]
	d.next++
	return t, nil
}

func (d *Dummy) Shutdown() error {
	log.Printf("DUMMY SENSOR SHUTDOWN")
	return nil
}
