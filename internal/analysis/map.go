package analysis

import (
	"fmt"
	"io"
)

// WriteMapNotice explains why no map artifact is produced. The facilities
// dataset carries no coordinates, so there is nothing to place on a map.
func WriteMapNotice(w io.Writer) {
	fmt.Fprintln(w, "\nNote: To create an actual map visualization, we would need latitude and longitude data for each park.")
	fmt.Fprintln(w, "A facility map can be added once park coordinates are joined onto the dataset.")
}
