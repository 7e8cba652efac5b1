package planner

import "fmt"

// BuildActivityPool returns the candidate activities for every weather class
// and time of day, with the normalized city name interpolated. The content is
// compiled-in reference data; construction never fails.
func BuildActivityPool(city string) ActivityPool {
	cityName := NormalizeCity(city)

	return ActivityPool{
		WeatherGood: {
			TimeMorning: {
				fmt.Sprintf("Spaziergang durch die Altstadt von %s", cityName),
				fmt.Sprintf("Besuch eines lokalen Marktes in %s", cityName),
				fmt.Sprintf("Frühstück in einem Café mit Terrasse in %s", cityName),
			},
			TimeAfternoon: {
				fmt.Sprintf("Stadtführung oder Hop On Hop Off Tour in %s", cityName),
				fmt.Sprintf("Besuch eines Parks oder einer Grünanlage in %s", cityName),
				fmt.Sprintf("Radtour durch verschiedene Viertel von %s", cityName),
			},
			TimeEvening: {
				fmt.Sprintf("Abendessen in einem typischen Restaurant in %s", cityName),
				fmt.Sprintf("Spaziergang am Abend durch %s", cityName),
				fmt.Sprintf("Besuch einer Rooftop Bar mit Aussicht über %s", cityName),
			},
		},
		WeatherBad: {
			TimeMorning: {
				fmt.Sprintf("Besuch eines Museums in %s", cityName),
				fmt.Sprintf("Frühstück in einem gemütlichen Café in %s", cityName),
				fmt.Sprintf("Besuch einer Markthalle in %s", cityName),
			},
			TimeAfternoon: {
				fmt.Sprintf("Besuch einer Galerie oder Ausstellung in %s", cityName),
				fmt.Sprintf("Shopping in einer Passage oder Mall in %s", cityName),
				fmt.Sprintf("Besuch eines Science Centers oder Erlebnis-Museums in %s", cityName),
			},
			TimeEvening: {
				fmt.Sprintf("Abendessen mit lokaler Küche in %s", cityName),
				fmt.Sprintf("Besuch eines Konzerts oder Theaters in %s", cityName),
				fmt.Sprintf("Besuch einer Wein- oder Cocktailbar in %s", cityName),
			},
		},
		WeatherMixed: {
			TimeMorning: {
				fmt.Sprintf("Gemütlicher Start mit Café und kurzem Stadtspaziergang in %s", cityName),
				fmt.Sprintf("Besuch einer bekannten Sehenswürdigkeit in %s", cityName),
			},
			TimeAfternoon: {
				fmt.Sprintf("Kombination aus Museum und Spaziergang in %s", cityName),
				fmt.Sprintf("Kulinarische Tour oder Street Food in %s", cityName),
			},
			TimeEvening: {
				fmt.Sprintf("Abendessen mit regionalen Spezialitäten in %s", cityName),
				fmt.Sprintf("Entspannter Abend in einer Bar oder einem Café in %s", cityName),
			},
		},
	}
}
