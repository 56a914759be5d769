package extract

import (
	"ratefinder/core/types"
)

// Assemble folds extracted tables into one accumulation per service and
// returns the service names in encounter order: table order, then
// left-to-right column order within a table. That order is what "first
// available service" means downstream, so it must not depend on map
// iteration. For every table, every weight row, and every service column,
// the price at that column index is written to zone_prices[zone][weight].
// Later tables for the same (zone, weight) overwrite earlier ones;
// documents are assumed internally consistent, so no conflict is raised.
func Assemble(tables []types.PriceTableData) (map[string]*types.ServicePriceData, []string) {
	services := make(map[string]*types.ServicePriceData)
	var order []string

	for _, table := range tables {
		for idx, name := range table.ServiceColumns {
			data, ok := services[name]
			if !ok {
				data = types.NewServicePriceData(name)
				services[name] = data
				order = append(order, name)
			}

			for weight, prices := range table.WeightPrices {
				if idx >= len(prices) {
					continue
				}
				data.AddPrice(table.Zone, weight, prices[idx])
			}
		}
	}

	return services, order
}
