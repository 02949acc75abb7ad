// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package output

// Definitions of the known output files.
// The table follows the outputs documented
// for the LPJ-GUESS output modules.
var definitions = []Metadata{
	// Daily gridcell-level outputs
	pft("file_agb", "AGB", "Above-Ground Biomass", "kg/m2", Gridcell, Daily),
	pft("file_agb_tree", "AGB", "Above-Ground Tree Biomass", "kg/m2", Gridcell, Daily),
	// Daily PFT-level outputs
	pft("file_dave_lai", "LAI", "Leaf Area Index", "m2/m2", Patch, Daily),
	pft("file_dave_fpc", "FPC", "Foliar Projective Cover", "", Patch, Daily),
	pft("file_dave_crownarea", "Crown Area", "Crown Area", "m2", Patch, Daily),
	pft("file_dave_agd_g", "Gross Photosynthesis", "Gross Photosynthesis", "gC/m2/day", Patch, Daily),
	pft("file_dave_rd_g", "Leaf Respiration", "Leaf Respiration", "gC/m2/day", Patch, Daily),
	pft("file_dave_je", "PAR-limited Photosynthesis", "PAR-limited photosynthetic rate", "gC/m2/h", Patch, Daily),
	pft("file_dave_vm", "RuBisCO", "RuBisCO capacity", "gC/m2/day", Patch, Daily),
	pft("file_dave_fphen_activity", "Phenology Activity", "Dormancy Downregulation", "0-1", Patch, Daily),
	pft("file_dave_fdev_growth", "Development Factor", "Development Factor for growth demand", "0-1", Patch, Daily),
	pft("file_dave_frepr_cstruct", "Reproductive Ratio", "Ratio of reproductive to aboveground structural biomass", "", Patch, Daily),
	pft("file_dave_growth_demand", "Growth Demand", "Growth Demand", "0-1", Patch, Daily),
	pft("file_dave_transpiration", "Transpiration", "Transpiration", "mm/day", Patch, Daily),
	pft("file_dave_nscal", "N Stress", "Nitrogen Stress (1=no stress)", "0-1", Patch, Daily),
	pft("file_dave_nscal_mean", "N Stress", "Nitrogen Stress (5 day running mean)", "0-1", Patch, Daily),
	pft("file_dave_ltor", "Leaf:Root Ratio", "Leaf:Root Ratio", "", Patch, Daily),
	pft("file_dave_cue", "CUE", "Carbon Use Efficiency", "", Patch, Daily),
	pft("file_dave_alpha_leaf", "Leaf Alpha", "Leaf Sink Strength", "0-1", Patch, Daily),
	pft("file_dave_alpha_root", "Root Alpha", "Root Sink Strength", "0-1", Patch, Daily),
	pft("file_dave_alpha_sap", "Sap Alpha", "Sap Sink Strength", "0-1", Patch, Daily),
	pft("file_dave_alpha_repr", "Reproductive Alpha", "Reproductive Sink Strength", "0-1", Patch, Daily),
	pft("file_dave_cmass", "C Mass", "PFT-Level Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_leaf_limit", "Leaf Limit", "Optimum Leaf C Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_root_limit", "Root Limit", "Optimum Root C Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_sap_limit", "Sap Limit", "Optimum Sap C Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_repr_limit", "Reproductive Limit", "Optimum Reproductive C Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_storage_limit", "Storage Limit", "Optimum Storage C Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cgrow_leaf", "Leaf Growth", "Leaf Carbon Allocation", "kgC/m2", Patch, Daily),
	pft("file_dave_cgrow_root", "Root Growth", "Root Carbon Allocation", "kgC/m2", Patch, Daily),
	pft("file_dave_cgrow_sap", "Sap Growth", "Sap Carbon Allocation", "kgC/m2", Patch, Daily),
	pft("file_dave_cgrow_repr", "Reproductive Growth", "Reproductive Carbon Allocation", "kgC/m2", Patch, Daily),
	pft("file_dave_diameter_inc", "Diameter Increment", "Diameter Increment", "m/day", Patch, Daily),
	pft("file_dave_height_inc", "Height Increment", "Height Increment", "m/day", Patch, Daily),
	pft("file_dave_height", "Height", "Plant Height", "m", Patch, Daily),
	pft("file_dave_diameter", "Diameter", "Stem Diameter", "m", Patch, Daily),
	pft("file_dave_basalarea", "Basal Area", "Basal Area", "m2/tree", Patch, Daily),
	pft("file_dave_basalarea_inc", "Basal Area Increment", "Basal Area Increment", "m2/tree/day", Patch, Daily),
	pft("file_dave_dturnover_leaf", "Leaf Turnover", "Leaf C Turnover", "kgC/m2/day", Patch, Daily),
	pft("file_dave_dturnover_root", "Root Turnover", "Root C Turnover", "kgC/m2/day", Patch, Daily),
	pft("file_dave_dturnover_sap", "Sap Turnover", "Sapwood C Turnover", "kgC/m2/day", Patch, Daily),
	pft("file_dave_anc_frac", "ANC Fraction", "Fraction of Photosynthesis Limited by Rubisco", "0-1", Patch, Daily),
	pft("file_dave_anj_frac", "ANJ Fraction", "Fraction of Photosynthesis Limited by RuBP Regeneration", "0-1", Patch, Daily),
	pft("file_dave_anp_frac", "ANP Fraction", "Fraction of Photosynthesis Limited by TPU", "0-1", Patch, Daily),
	pft("file_dave_dnuptake", "N Uptake", "Nitrogen Uptake", "kgN/m2/day", Patch, Daily),
	pft("file_dave_cexcess", "Carbon Overflow", "Carbon Overflow", "kgC/m2/day", Patch, Daily),
	pft("file_dave_ctolitter_leaf", "Leaf C to Litter", "Leaf Carbon to Litter", "kgC/m2/day", Patch, Daily),
	pft("file_dave_ntolitter_leaf", "Leaf N to Litter", "Leaf Nitrogen to Litter", "kgN/m2/day", Patch, Daily),
	pft("file_dave_ctolitter_root", "Root C to Litter", "Root Carbon to Litter", "kgC/m2/day", Patch, Daily),
	pft("file_dave_ntolitter_root", "Root N to Litter", "Root Nitrogen to Litter", "kgN/m2/day", Patch, Daily),
	pft("file_dave_ctolitter_repr", "Reproductive C to Litter", "Reproductive Carbon to Litter", "kgC/m2/day", Patch, Daily),
	pft("file_dave_ntolitter_repr", "Reproductive N to Litter", "Reproductive Nitrogen to Litter", "kgN/m2/day", Patch, Daily),
	pft("file_dave_ctolitter_crown", "Crown C to Litter", "Crown Carbon to Litter", "kgC/m2/day", Patch, Daily),
	pft("file_dave_ntolitter_crown", "Crown N to Litter", "Crown Nitrogen to Litter", "kgN/m2/day", Patch, Daily),
	pft("file_dave_aboveground_cmass", "Above-Ground C Mass", "Above-Ground Carbon Biomass", "kgC/m2", Patch, Daily),
	pft("file_dave_belowground_cmass", "Below-Ground C Mass", "Below-Ground Carbon Biomass", "kgC/m2", Patch, Daily),
	pft("file_dave_aboveground_nmass", "Above-Ground N Mass", "Above-Ground Nitrogen Biomass", "kgN/m2", Patch, Daily),
	pft("file_dave_belowground_nmass", "Below-Ground N Mass", "Below-Ground Nitrogen Biomass", "kgN/m2", Patch, Daily),
	pft("file_dave_aboveground_tree_biomass", "Above-Ground Tree Biomass", "Above-Ground Tree Biomass", "kg/m2", Patch, Daily),
	pft("file_dave_live_biomass", "Live Biomass", "Live Biomass", "kg/m2", Patch, Daily),
	pft("file_dave_indiv_npp", "NPP", "Net Primary Productivity", "gC/m2/day", Patch, Daily),
	pft("file_dave_sla", "SLA", "Specific Leaf Area", "m2/kgC", Patch, Daily),
	pft("file_dave_cmass_leaf", "Leaf C Mass", "Green Leaf Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_leaf_brown", "Brown Leaf C Mass", "Brown Leaf Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_nmass_leaf", "Leaf N Mass", "Green Leaf Nitrogen Mass", "kgN/m2", Patch, Daily),
	pft("file_dave_cmass_crown", "Crown C Mass", "Crown Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_repr", "Reproductive C Mass", "Reproductive Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_root", "Root C Mass", "Root Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_nmass_root", "Root N Mass", "Root Nitrogen Mass", "kgN/m2", Patch, Daily),
	pft("file_dave_nmass", "N Mass", "Vegetation N Mass", "kgN/m2", Patch, Daily),
	pft("file_dave_cmass_storage", "Storage C Mass", "Non-Structural Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_cmass_storage_max", "Storage C Capacity", "Non-Structural Carbon Capacity", "kgC/m2", Patch, Daily),
	pft("file_dave_nmass_storage", "Storage N Mass", "Non-Structural Nitrogen Mass", "kgN/m2", Patch, Daily),
	pft("file_dave_nmass_storage_max", "Max Storage N Mass", "Max Non-Structural Nitrogen Mass", "kgN/m2", Patch, Daily),
	pft("file_dave_cmass_sap", "Sapwood C Mass", "Sapwood Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_nmass_sap", "Sapwood N Mass", "Sapwood Nitrogen Mass", "kgN/m2", Patch, Daily),
	pft("file_dave_cmass_heart", "Heartwood C Mass", "Heartwood Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_nmass_heart", "Heartwood N Mass", "Heartwood Nitrogen Mass", "kgN/m2", Patch, Daily),
	pft("file_dave_nmass_repr", "Reproductive N Mass", "Reproductive Nitrogen Mass", "kgN/m2", Patch, Daily),
	pft("file_dave_ndemand", "N Demand", "Nitrogen Demand", "kgN/m2/day", Patch, Daily),
	pft("file_dave_density", "Density", "Tree Density", "/m2", Patch, Daily),
	pft("file_dave_sapwood_area", "Sapwood Area", "Sapwood Area", "m2", Patch, Daily),
	pft("file_dave_latosa", "LA:SA", "Leaf Area to Sapwood Area Ratio", "", Patch, Daily),
	pft("file_dave_fpar", "FPAR", "Fraction of Absorbed PAR", "0-1", Patch, Daily),
	pft("file_dave_indiv_gpp", "GPP", "Gross Primary Productivity", "gC/m2/day", Patch, Daily),
	pft("file_dave_resp_autotrophic", "Autotrophic Respiration", "Autotrophic Respiration", "gC/m2/day", Patch, Daily),
	pft("file_dave_resp_maintenance", "Maintenance Respiration", "Maintenance Respiration", "gC/m2/day", Patch, Daily),
	pft("file_dave_resp_growth", "Growth Respiration", "Growth Respiration", "gC/m2/day", Patch, Daily),
	pft("file_dave_layerwise_fpar", "FPAR", "Layerwise Fraction of Absorbed PAR", "0-1", Patch, Daily),
	pft("file_dave_layerwise_lai", "LAI", "Layerwise Leaf Area Index", "m2/m2", Patch, Daily),
	pft("file_dave_wscal", "Water Stress", "Water Stress (1=no stress)", "0-1", Patch, Daily),
	pft("file_dave_cmass_litter_repr", "Reproductive C Litter", "Reproductive Carbon in Litter", "kgC/m2", Patch, Daily),
	pft("file_dave_nmass_litter_repr", "Reproductive N Litter", "Reproductive Nitrogen in Litter", "kgN/m2", Patch, Daily),
	pft("file_dave_dresp", "Autotrophic Respiration", "Autotrophic Respiration by PFT", "kgC/m2/day", Patch, Daily),
	pft("file_dave_cmass_seed_ext", "Grass Seedbank", "Grass Seedbank Carbon Mass", "kgC/m2", Patch, Daily),
	pft("file_dave_subdaily_an", "Net Photosynthesis", "Net Photosynthesis", "mol/m2/s", Patch, Subdaily),
	pft("file_dave_subdaily_rd", "Leaf Respiration", "Leaf Respiration", "mol/m2/s", Patch, Subdaily),
	pft("file_dave_subdaily_anc", "RuBisCO-limited Photosynthesis", "RuBisCO-limited Photosynthesis", "mol/m2/s", Patch, Subdaily),
	pft("file_dave_subdaily_anj", "RuBP-Limited Photosynthesis", "RuBP Regeneration-Limited Photosynthesis", "mol/m2/s", Patch, Subdaily),
	pft("file_dave_subdaily_gsw", "Stomatal Conductance", "Stomatal conductance to Water Vapour", "mol/m2/s", Patch, Subdaily),
	pft("file_dave_subdaily_ci", "CO2 Concentration", "Intercellular CO2 Concentration", "mol/mol", Patch, Subdaily),
	pft("file_dave_subdaily_vcmax", "Vcmax", "Maximum Carboxylation Rate", "mol/m2/s", Patch, Subdaily),
	pft("file_dave_subdaily_jmax", "Jmax", "Maximum Electron Transport Rate", "mol/m2/s", Patch, Subdaily),
	pft("file_dave_sw", "Soil Water", "Soil Water Fraction Full", "mm", Patch, Daily),
	pft("file_dave_swmm", "Soil Water", "Soil Water Content", "mm", Patch, Daily),
	pft("file_dave_swvol", "Soil Water", "Volumetric Soil Water Content", "m3/m3", Patch, Daily),
	pft("file_dave_cfluxes_patch", "Patch C Fluxes", "Daily patch-level carbon fluxes", "gC/m2/day", Patch, Daily),
	pft("file_dave_cfluxes_pft", "PFT C Fluxes", "Daily PFT-level carbon fluxes", "gC/m2/day", Patch, Daily),
	pft("file_dave_anetps_ff_max", "Max Forest Floor Net Photosynthesis", "Maximum Recorded Annual Net Forest-Floor Photosynthesis", "kgC/m2", Patch, Daily),
	pft("file_dave_met_subdaily_temp", "Temperature", "Air Temperature", "°C", Patch, Subdaily),
	pft("file_dave_met_subdaily_par", "PAR", "Photosynthetically Active Radiation", "kJ/m2/timestep", Patch, Subdaily),
	pft("file_dave_met_subdaily_vpd", "VPD", "Vapor Pressure Deficit", "kPa", Patch, Subdaily),
	pft("file_dave_met_subdaily_insol", "Insolation", "Insolation (units depend on instype)", "kJ/m2/timestep", Patch, Subdaily),
	pft("file_dave_met_subdaily_precip", "Precipitation", "Precipitation", "mm", Patch, Subdaily),
	pft("file_dave_met_subdaily_pressure", "Pressure", "Atmospheric Pressure", "kPa", Patch, Subdaily),
	pft("file_dave_met_subdaily_co2", "CO2", "Atmospheric CO2 Concentration", "ppm", Patch, Subdaily),
	uniform("file_dave_met_pressure", "Pressure", "Atmospheric pressure", "kPa", []string{"pressure"}, Patch, Daily),
	uniform("file_dave_met_co2", "CO2", "Atmospheric CO2 concentration", "ppm", []string{"co2"}, Patch, Daily),
	uniform("file_dave_met_temp", "Temperature", "Air Temperature", "°C", []string{"temp"}, Patch, Daily),
	uniform("file_dave_met_par", "PAR", "Photosynthetically Active Radiation", "kJ/m2/timestep", []string{"par"}, Patch, Daily),
	uniform("file_dave_met_vpd", "VPD", "Vapor Pressure Deficit", "kPa", []string{"vpd"}, Patch, Daily),
	uniform("file_dave_met_insol", "Insolation", "Insolation", "", []string{"insol"}, Patch, Daily),
	uniform("file_dave_met_precip", "Precipitation", "precipitation", "mm", []string{"precip"}, Patch, Daily),
	// Daily individual-level outputs.
	uniform("file_dave_indiv_cpool", "C Pools", "Vegetation Carbon Pools", "kgC/m2", []string{
		"cmass_leaf", "cmass_root", "cmass_crown", "cmass_sap", "cmass_heart",
		"cmass_repr", "cmass_storage",
	}, Individual, Daily),
	uniform("file_dave_indiv_npool", "N Pools", "Vegetation Nitrogen Pools", "kgN/m2", []string{
		"nmass_leaf", "nmass_root", "nmass_crown", "nmass_sap", "nmass_heart",
		"nmass_repr", "nmass_storage",
	}, Individual, Daily),
	uniform("file_dave_indiv_lai", "LAI", "Leaf Area Index", "m2/m2", []string{"lai"}, Individual, Daily),
	// Annual patch-level outputs
	uniform("file_dave_patch_age", "Patch Age", "Time Since Disturbance", "years", []string{"age"}, Patch, Annual),
	uniform("file_dave_arunoff", "Runoff", "Annual Runoff", "mm", []string{"runoff"}, Patch, Annual),
	columns("file_dave_globfirm", "Globfirm", "Annual GLOBFIRM Outputs", []Column{{"fireprob", "0-1"}}, Patch, Annual),
	uniform("file_dave_acpool", "C Pools", "Carbon Pools", "kgC/m2", []string{
		"cmass_veg", "cmass_litter", "cmass_soil", "total",
	}, Patch, Annual),
	uniform("file_dave_anpool", "N Pools", "Nitrogen Pools", "kgN/m2", []string{
		"nmass_veg", "nmass_litter", "nmass_soil", "total",
	}, Patch, Annual),
	uniform("file_dave_acflux", "C Fluxes", "Carbon Fluxes", "gC/m2", []string{
		"npp", "gpp", "ra", "rh",
	}, Patch, Annual),
	// monthly patch-level soil water
	monthly("file_dave_mwcont_upper", "Water Content", "Water Content Fraction of Upper Soil Layer", "0-1", Patch),
	monthly("file_dave_mwcont_lower", "Water Content", "Water Content Fraction of Lower Soil Layer", "0-1", Patch),
	uniform("file_dave_apet", "PET", "Potential Evapotranspiration", "mm", []string{"pet"}, Patch, Annual),
	columns("file_dave_asimfire", "Simfire", "Simfire analysis", []Column{
		{"burned_area", "fraction"},
		{"fire_carbon", "gC/m2"},
	}, Patch, Annual),
	uniform("file_dave_afuel", "Fuel", "Blaze fuel availability", "gC/m2", []string{"fuel"}, Patch, Annual),
	uniform("file_dave_acoarse_woody_debris", "CWD", "Coarse Woody Debris", "gC/m2", []string{"cwd"}, Patch, Annual),
	uniform("file_dave_amet_year", "Met Year", "Current year of met data being used", "year", []string{"year"}, Patch, Annual),
	uniform("file_dave_aco2", "CO2", "Atmospheric CO2 Concentration", "ppm", []string{"co2"}, Patch, Annual),
	uniform("file_dave_aminleach", "Mineral N Leaching", "Leaching of Soil Mineral N", "kgN/m2/yr", []string{"aminleach"}, Patch, Annual),
	uniform("file_dave_sompool_acmass", "SOM Pool C Mass", "Surface Organic Matter Carbon Mass by Pool", "kgC/m2", []string{
		"SURFSTRUCT", "SOILSTRUCT", "SOILMICRO", "SOILACTIVE", "SOILSLOW",
		"SOILPASSIVE", "SURFMETA", "SURFMICRO", "SURFFWD", "SURFCWD", "total",
	}, Patch, Annual),
	uniform("file_dave_sompool_anmass", "SOM Pool N Mass", "Surface Organic Matter Nitrogen Mass by Pool", "kgN/m2", []string{
		"SURFSTRUCT", "SOILSTRUCT", "SOILMICRO", "SOILACTIVE", "SOILSLOW",
		"SOILPASSIVE", "SURFMETA", "SURFMICRO", "SURFFWD", "SURFCWD", "total",
	}, Patch, Annual),
	uniform("file_dave_andep", "N Deposition", "Nitrogen Deposition", "kgN/m2", []string{
		"dNO3dep", "dNH4dep", "nfert", "total",
	}, Patch, Annual),
	uniform("file_dave_anfixation", "N Fixation", "Nitrogen Fixation", "kgN/m2", []string{"nfixation"}, Patch, Annual),
	// Daily patch-level outputs
	uniform("file_dave_daylength", "Day Length", "Day Length", "h", []string{"daylength"}, Patch, Daily),
	uniform("file_dave_soil_nmass_avail", "Available Soil N", "Soil N Mass Available for Plant Uptake", "kgN/m2", []string{"soil_nmass_avail"}, Patch, Daily),
	columns("file_dave_dsimfire", "Simfire", "Simfire Analysis", []Column{
		{"burned_area", "fraction"},
		{"fire_carbon", "gC/m2"},
	}, Patch, Daily),
	uniform("file_dave_sompool_cmass", "SOM Pool C Mass", "Surface Organic Matter Carbon Mass by Pool", "kgC/m2", []string{"cmass"}, Patch, Daily),
	uniform("file_dave_sompool_nmass", "SOM Pool N Mass", "Surface Organic Matter Nitrogen Mass by Pool", "kgN/m2", []string{"nmass"}, Patch, Daily),
	uniform("file_dave_ninput", "N Input", "Nitrogen Deposition", "kgN/m2", []string{"ninput"}, Patch, Daily),
	uniform("file_dave_fpar_ff", "Forest-Floor FPAR", "Fraction of Photosynthetically Active Radiation Reaching the Forest Floor", "0-1", []string{"fpar_ff"}, Patch, Daily),
	uniform("file_dave_aet", "ET", "Evaporation and Transpiration", "mm", []string{"evap", "transp"}, Patch, Daily),
	uniform("file_dave_resp_heterotrophic", "Heterotrophic Respiration", "Heterotrophic respiration", "gC/m2/day", []string{"resp_h"}, Patch, Daily),
	uniform("file_dave_resp", "Respiration", "Ecosystem Respiration", "gC/m2/day", []string{"resp"}, Patch, Daily),
	uniform("file_dave_gpp", "GPP", "Gross Primary Productivity", "gC/m2/day", []string{"gpp"}, Patch, Daily),
	uniform("file_dave_npp", "NPP", "Net Primary Productivity", "gC/m2/day", []string{"npp"}, Patch, Daily),
	uniform("file_dave_nee", "NEE", "Net Ecosystem Exchange", "gC/m2/day", []string{"nee"}, Patch, Daily),
	uniform("file_dave_evaporation", "Evaporation", "Evaporation", "mm/day", []string{
		"evaporation", "interception", "transpiration", "evapotranspiration",
	}, Patch, Daily),
	uniform("file_dave_soilc", "Soil Carbon", "Soil Carbon Carbon Mass", "kgC/m2", []string{"soilc"}, Patch, Daily),
	uniform("file_dave_soiln", "Soil Nitrogen", "Soil Nitrogen Nitrogen Mass", "kgN/m2", []string{"soiln"}, Patch, Daily),
	uniform("file_dave_soil_nflux", "Soil N Flux", "Soil Nitrogen Flux", "kgN/m2/day", []string{"nflux"}, Patch, Daily),
	uniform("file_dave_dfuel", "Fuel Availability", "Fuel Availability for Blaze", "kgC/m2", []string{"fuel"}, Patch, Daily),
	uniform("file_dave_dcoarse_woody_debris", "CWD", "Coarse Woody Debris Carbon Mass", "gC/m2", []string{"cwd"}, Patch, Daily),
	// Annual patch-level PFT outputs.
	pft("file_dave_alai", "LAI", "Leaf Area Index", "m2/m2", Patch, Annual),
	pft("file_dave_afpc", "FPC", "Foliage Projective Cover", "0-1", Patch, Annual),
	pft("file_dave_acmass", "C Mass", "Carbon Mass", "kgC/m2", Patch, Annual),
	pft("file_dave_anmass", "N Mass", "Nitrogen Mass", "kgN/m2", Patch, Annual),
	pft("file_dave_aheight", "Height", "Plant Height", "m", Patch, Annual),
	pft("file_dave_aaet", "AET", "Actual Evapotranspiration", "mm", Patch, Annual),
	pft("file_dave_adensity", "Density", "Density of individuals over patch", "/m2", Patch, Annual),
	pft("file_dave_altor", "Leaf:Root Ratio", "Leaf:Root Ratio", "", Patch, Annual),
	pft("file_dave_anuptake", "N Uptake", "Vegetation Nitrogen Uptake", "kgN/m2/year", Patch, Annual),
	pft("file_dave_a_aboveground_cmass", "Above-Ground C Mass", "Above-Ground Carbon biomass", "kgC/m2", Patch, Annual),
	pft("file_dave_a_belowground_cmass", "Below-Ground C Mass", "Below-Ground Carbon biomass", "kgC/m2", Patch, Annual),
	pft("file_dave_a_aboveground_nmass", "Above-Ground N Mass", "Above-Ground Nitrogen biomass", "kgN/m2", Patch, Annual),
	pft("file_dave_a_belowground_nmass", "Belowground N Mass", "Belowground Nitrogen biomass", "kgN/m2", Patch, Annual),
	pft("file_dave_anpp", "NPP", "Net Primary Productivity", "kgC/m2/year", Patch, Annual),
	pft("file_dave_agpp", "GPP", "Gross Primary Productivity", "kgC/m2/year", Patch, Annual),
	pft("file_dave_aresp", "Respiration", "Autotrophic Respiration", "kgC/m2/year", Patch, Annual),
	pft("file_dave_acmass_mort", "Mortality C Mass", "Carbon Mass of Killed Vegetation", "kgC/m2", Patch, Annual),
	pft("file_dave_aclitter", "C Litter", "Carbon Litter", "kgC/m2", Patch, Annual),
	pft("file_dave_ancohort", "Number of Cohorts", "Number of Cohorts of each PFT", "count", Patch, Annual),
	pft("file_dave_anetps_ff", "Forest-Floor Net Photosynthesis", "Net photosynthesis at forest floor", "kgC/m2", Patch, Annual),
	pft("file_dave_acalloc_leaf", "Leaf C Allocation", "Carbon Allocation to Leaf", "kgC/m2", Patch, Annual),
	pft("file_dave_acalloc_root", "Root C Allocation", "Carbon Allocation to Root", "kgC/m2", Patch, Annual),
	pft("file_dave_acalloc_repr", "Repr C Allocation", "Carbon Allocation to Repr", "kgC/m2", Patch, Annual),
	pft("file_dave_acalloc_sap", "Sapwood C Allocation", "Carbon Allocation to Sapwood", "kgC/m2", Patch, Annual),
	pft("file_dave_acalloc_crown", "Crown C Allocation", "Carbon Allocation to Crown", "kgC/m2", Patch, Annual),
	// Annual stand-level outputs
	uniform("file_dave_stand_frac", "Stand Fraction", "Fraction of the gridcell occupied by each stand", "", []string{"fraction"}, Stand, Annual),
	uniform("file_dave_stand_type", "Stand Type", "Stand landcover types", "", []string{"type"}, Stand, Annual),
	// Annual gridcell-level PFT outputs.
	pft("file_cmass", "C Mass", "Total Carbon Biomass", "kgC/m2", Gridcell, Annual),
	pft("file_anpp", "NPP", "Net Primary Production", "kgC/m2/year", Gridcell, Annual),
	pft("file_agpp", "GPP", "Gross Primary Production", "kgC/m2/year", Gridcell, Annual),
	pft("file_fpc", "FPC", "Foliage Projective Cover", "0-1", Gridcell, Annual),
	pft("file_aaet", "AET", "Actual Evapotranspiration", "mm/year", Gridcell, Annual),
	pft("file_lai", "LAI", "Leaf Area Index", "m2/m2", Gridcell, Annual),
	// Annual gridcell-level outputs.
	uniform("file_cflux", "Carbon Fluxes", "Carbon Fluxes", "kgC/m2/year", []string{
		"Veg", "Repr", "Soil", "Fire", "Est", "Seed", "Harvest", "LU_ch", "Slow_h",
		"NEE",
	}, Gridcell, Annual),
	pft("file_doc", "Dissolved Organic Carbon", "Dissolved Organic Carbon", "kgC/m2", Gridcell, Annual),
	pft("file_dens", "Tree Density", "Tree Density", "indiv/m2", Gridcell, Annual),
	uniform("file_cpool", "Soil Carbon", "Soil Carbon Pools", "kgC/m2", []string{
		"VegC", "LitterC", "SoilC", "Total",
	}, Gridcell, Annual),
	pft("file_clitter", "Carbon Litter", "Carbon in litter", "kgC/m2", Gridcell, Annual),
	uniform("file_runoff", "Runoff", "Runoff", "mm/year", []string{
		"Surf", "Drain", "Base", "Total",
	}, Gridcell, Annual),
	uniform("file_wetland_water_added", "Wetland Water Added", "Water Added to Wetland", "mm", []string{"H2OAdded"}, Gridcell, Annual),
	pft("file_speciesheights", "Species Height", "Mean Species Height", "m", Gridcell, Annual),
	pft("file_speciesdiam", "Species Diameter", "Mean Species Diameter", "m", Gridcell, Annual),
	columns("file_firert", "Fire Return Time", "Fire Return Time", []Column{
		{"FireRT", "years"},
		{"BurntFr", "0-1"},
	}, Gridcell, Annual),
	pft("file_nmass", "N Mass", "Nitrogen Content in Vegetation", "kgN/m2", Gridcell, Annual),
	pft("file_cton_leaf", "Leaf C:N Ratio", "Carbon to Nitrogen Ratio in Leaves", "-", Gridcell, Annual),
	uniform("file_nsources", "N Sources", "Nitrogen Sources", "kgN/m2/year", []string{
		"NH4dep", "NO3dep", "fix", "fert", "input", "min", "imm", "netmin",
		"Total",
	}, Gridcell, Annual),
	uniform("file_npool", "N Pools", "Nitrogen Pools", "kgN/m2", []string{
		"VegN", "LitterN", "SoilN", "Total",
	}, Gridcell, Annual),
	pft("file_nlitter", "N Litter", "Litter Nitrogen Mass", "kgN/m2", Gridcell, Annual),
	pft("file_nuptake", "N Uptake", "Nitrogen Uptake", "kgN/m2/year", Gridcell, Annual),
	pft("file_vmaxnlim", "Vmax N Limitation", "Nitrogen Limitation on Vmax", "", Gridcell, Annual),
	uniform("file_nflux", "N Fluxes", "Nitrogen Fluxes", "kgN/m2/year", []string{
		"NH4dep", "NO3dep", "fix", "fert", "est", "flux", "leach", "NEE", "Total",
	}, Gridcell, Annual),
	uniform("file_ngases", "N Gas Emissions", "Nitrogen Gas Emissions", "kgN/m2/year", []string{
		"NH3_fire", "NH3_soil", "NOx_fire", "NOx_soil", "N2O_fire", "N2O_soil",
		"N2_fire", "N2_soil", "Total",
	}, Gridcell, Annual),
	pft("file_aiso", "Isoprene Flux", "Isoprene Flux", "mgC/m2/year", Gridcell, Annual),
	pft("file_amon", "Monoterpene Flux", "Monoterpene Flux", "mgC/m2/year", Gridcell, Annual),
	pft("file_amon_mt1", "Endocyclic Monoterpene Flux", "Endocyclic Monoterpene Flux", "mgC/m2/year", Gridcell, Annual),
	pft("file_amon_mt2", "Other Monoterpene Flux", "Other Monoterpene Flux", "mgC/m2/year", Gridcell, Annual),
	columns("file_aburned_area_out", "BLAZE Burned Area", "BLAZE Burned Area", []Column{{"BurntFr", "0-1"}}, Gridcell, Annual),
	columns("file_simfireanalysis_out", "SIMFIRE Analytics", "SIMFIRE Analytics", []Column{
		{"Biome", "0=NOVEG, 1=CROP, 2=NEEDLELEAF, 3=BROADLEAF, 4=MIXED_FOREST, 5=SHRUBS, 6=SAVANNA, 7=TUNDRA, 8=BARREN"},
		{"MxNest", "-"},
		{"PopDens", "inhabitants/km2"},
		{"AMxFApar", "0-1"},
		{"FireProb", "0-1"},
		{"Region", "unused"},
	}, Gridcell, Annual),
	// Monthly gridcell-level outputs
	monthly("file_mnpp", "NPP", "Net Primary Productivity", "kgC/m2/month", Gridcell),
	monthly("file_mlai", "LAI", "Leaf Area Index", "m2/m2", Gridcell),
	monthly("file_mgpp", "GPP", "Gross Primary Productivity", "kgC/m2/month", Gridcell),
	monthly("file_mra", "Ra", "Autotrophic Respiration", "kgC/m2/month", Gridcell),
	monthly("file_maet", "AET", "Actual Evapotranspiration", "mm/month", Gridcell),
	monthly("file_mpet", "PET", "Potential Evapotranspiration", "mm/month", Gridcell),
	monthly("file_mevap", "Evaporation", "Evaporation", "mm/month", Gridcell),
	monthly("file_mrunoff", "Runoff", "Runoff", "mm/month", Gridcell),
	monthly("file_mintercep", "Interception", "Interception", "mm/month", Gridcell),
	monthly("file_mrh", "Rh", "Heterotrophic Respiration", "kgC/m2/month", Gridcell),
	monthly("file_mnee", "NEE", "Net Ecosystem Exchange", "kgC/m2/month", Gridcell),
	monthly("file_mwcont_upper", "Water Content", "Water Content Fraction of Upper Soil Layer", "", Gridcell),
	monthly("file_mwcont_lower", "Water Content", "Water Content Fraction of Lower Soil Layer", "", Gridcell),
	monthly("file_miso", "Isoprene Flux", "Isoprene Flux", "mgC/m2/month", Gridcell),
	monthly("file_mmon", "Monoterpene Flux", "Monoterpene Flux", "mgC/m2/month", Gridcell),
	monthly("file_mmon_mt1", "Endocyclic Monoterpene Flux", "Endocyclic Monoterpene Flux", "mgC/m2", Gridcell),
	monthly("file_mmon_mt2", "Other Monoterpene Flux", "Other Monoterpene Flux", "mgC/m2", Gridcell),
	monthly("file_msoiltempdepth5", "Soil Temperature", "Soil temperature (5cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth15", "Soil Temperature", "Soil temperature (15cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth25", "Soil Temperature", "Soil temperature (25cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth35", "Soil Temperature", "Soil temperature (35cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth45", "Soil Temperature", "Soil temperature (45cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth55", "Soil Temperature", "Soil temperature (55cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth65", "Soil Temperature", "Soil temperature (65cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth75", "Soil Temperature", "Soil temperature (75cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth85", "Soil Temperature", "Soil temperature (85cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth95", "Soil Temperature", "Soil temperature (95cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth105", "Soil Temperature", "Soil temperature (105cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth115", "Soil Temperature", "Soil temperature (115cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth125", "Soil Temperature", "Soil temperature (125cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth135", "Soil Temperature", "Soil temperature (135cm)", "degC", Gridcell),
	monthly("file_msoiltempdepth145", "Soil Temperature", "Soil temperature (145cm)", "degC", Gridcell),
	monthly("file_mch4", "CH4 Emissions", "CH4 emissions (Total)", "kgC/m2/year", Gridcell),
	monthly("file_mch4diff", "CH4 Emissions", "CH4 emissions (Diffusion)", "kgC/m2/year", Gridcell),
	monthly("file_mch4plan", "CH4 Emissions", "CH4 emissions (Plant-mediated)", "kgC/m2/year", Gridcell),
	monthly("file_mch4ebull", "CH4 Emissions", "CH4 emissions (Ebullition)", "kgC/m2/year", Gridcell),
	monthly("file_msnow", "Snow Depth", "Snow depth", "m", Gridcell),
	monthly("file_mwtp", "Water Table Depth", "Water table depth", "m", Gridcell),
	columns("file_mald", "Active Layer Depth", "Active layer depth", append(monthColumns("m"), Column{"MAXALD", "m"}), Gridcell, Monthly),
	monthly("file_mburned_area_out", "BLAZE Burned Area", "BLAZE Burned Area", "0-1", Gridcell),
}

// pft defines an output
// with one data column per PFT.
func pft(fileType, name, desc string, u Unit, level Level, res Resolution) Metadata {
	s, err := NewDynamic(u, level, res)
	if err != nil {
		panic("output: " + fileType + ": " + err.Error())
	}
	return Metadata{
		FileType:    fileType,
		Name:        name,
		Description: desc,
		Layers:      s,
		Level:       level,
		Resolution:  res,
	}
}

// uniform defines an output
// with a fixed set of columns
// that share the same unit.
func uniform(fileType, name, desc string, u Unit, cols []string, level Level, res Resolution) Metadata {
	return Metadata{
		FileType:    fileType,
		Name:        name,
		Description: desc,
		Layers:      NewUniform(cols, u),
		Level:       level,
		Resolution:  res,
	}
}

// columns defines an output
// with a fixed set of columns
// each one with its own unit.
func columns(fileType, name, desc string, cols []Column, level Level, res Resolution) Metadata {
	return Metadata{
		FileType:    fileType,
		Name:        name,
		Description: desc,
		Layers:      NewStatic(cols),
		Level:       level,
		Resolution:  res,
	}
}

// monthly defines a monthly output
// with one column per month,
// and the annual total.
func monthly(fileType, name, desc string, u Unit, level Level) Metadata {
	return columns(fileType, name, desc, monthColumns(u), level, Monthly)
}

func monthColumns(u Unit) []Column {
	cols := make([]Column, 0, len(monthNames)+1)
	for _, m := range monthNames {
		cols = append(cols, Column{Name: m, Unit: u})
	}
	return append(cols, Column{Name: TotalColumn, Unit: u})
}
