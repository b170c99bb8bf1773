package domain

type ProjectCount struct {
	Project string `json:"project"`
	Count   int    `json:"count"`
}

type CabinetUtilization struct {
	Name           string `json:"name"`
	ComponentCount int    `json:"component_count"`
}

type Statistics struct {
	TotalCabinets      int                  `json:"total_cabinets"`
	TotalComponents    int                  `json:"total_components"`
	StoredComponents   int                  `json:"stored_components"`
	UnstoredComponents int                  `json:"unstored_components"`
	EmptyCabinets      int                  `json:"empty_cabinets"`
	TopProjects        []ProjectCount       `json:"top_projects"`
	CabinetUtilization []CabinetUtilization `json:"cabinet_utilization"`
}
