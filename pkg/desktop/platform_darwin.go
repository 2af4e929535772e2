package desktop

var platformKinds = []Kind{KindOSAScript}

const staticPreference = KindOSAScript
