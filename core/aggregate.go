package core

// CountyAggregate 是按县聚合的只读视图：由当前快照按需计算并缓存，
// 绝不直接修改；快照替换后整体重算。
type CountyAggregate struct {
	County        string  `json:"county"`
	MeanRent      float64 `json:"mean_rent"`
	MeanCrimeRate float64 `json:"mean_crime_rate"`
	Count         int     `json:"count"`
}

// Summary 是一个排名视图的汇总统计（界面顶部的概览指标）。
type Summary struct {
	Count         int     `json:"count"`
	MeanRent      float64 `json:"mean_rent"`
	MeanCrimeRate float64 `json:"mean_crime_rate"`
	MeanScore     float64 `json:"mean_score"`
}
